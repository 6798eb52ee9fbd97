package service

import (
	"context"

	"foodordering/payment-svc/internal/domain"
)

type PaymentServiceInterface interface {
	Process(ctx context.Context, userID string, req domain.ProcessPaymentRequest) (*domain.Payment, error)
	ByTransaction(ctx context.Context, transactionID string) (*domain.Payment, error)
	ByOrder(ctx context.Context, orderID string) (*domain.Payment, error)
	List(ctx context.Context, limit int) ([]domain.Payment, error)
	Refund(ctx context.Context, transactionID string, req domain.RefundRequest) (*domain.Payment, error)

	AddMethod(ctx context.Context, userID string, req domain.PaymentMethodRequest) (*domain.PaymentMethod, error)
	Methods(ctx context.Context, userID string) ([]domain.PaymentMethod, error)
	RemoveMethod(ctx context.Context, userID string, methodID int64) error
	SetDefaultMethod(ctx context.Context, userID string, methodID int64) error
}

type PaymentRepository interface {
	Insert(ctx context.Context, payment *domain.Payment) error
	FindByTransaction(ctx context.Context, transactionID string) (*domain.Payment, error)
	FindByOrder(ctx context.Context, orderID string) (*domain.Payment, error)
	FindCompletedByOrder(ctx context.Context, orderID string) (*domain.Payment, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Payment, error)
	ApplyRefund(ctx context.Context, paymentID int64, refund *domain.Refund, newStatus domain.PaymentStatus) error
}

type PaymentMethodRepository interface {
	Insert(ctx context.Context, method *domain.PaymentMethod) error
	FindByUser(ctx context.Context, userID string) ([]domain.PaymentMethod, error)
	Delete(ctx context.Context, userID string, methodID int64) error
	SetDefault(ctx context.Context, userID string, methodID int64) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.PaymentEvent) error
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
