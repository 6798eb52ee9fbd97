package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"foodordering/payment-svc/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrDuplicatePayment = errors.New("order already has a completed payment")
	ErrNotRefundable    = errors.New("payment is not refundable")
	ErrRefundTooLarge   = errors.New("refund exceeds refundable amount")
	ErrMethodNotFound   = errors.New("payment method not found")
)

const (
	EventPaymentCompleted = "payment.completed"
	EventPaymentFailed    = "payment.failed"
	EventPaymentRefunded  = "payment.refunded"
)

// maxChargeAmount is the provider's per-transaction limit. Charges above
// it are declined.
const maxChargeAmount = 10000

type PaymentService struct {
	payments  PaymentRepository
	methods   PaymentMethodRepository
	publisher EventPublisher
}

func NewPaymentService(payments PaymentRepository, methods PaymentMethodRepository, publisher EventPublisher) *PaymentService {
	return &PaymentService{payments: payments, methods: methods, publisher: publisher}
}

// Process charges the order. Exactly one COMPLETED payment may exist per
// order, a second attempt is rejected before touching the provider.
func (s *PaymentService) Process(ctx context.Context, userID string, req domain.ProcessPaymentRequest) (*domain.Payment, error) {
	existing, err := s.payments.FindCompletedByOrder(ctx, req.OrderID)
	if err != nil && !errors.Is(err, ErrPaymentNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicatePayment
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now()
	payment := &domain.Payment{
		TransactionID: "TXN_" + uuid.NewString(),
		OrderID:       req.OrderID,
		UserID:        userID,
		Amount:        math.Round(req.Amount*100) / 100,
		Currency:      currency,
		Method:        req.Method,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	payment.Status, payment.FailureReason = charge(req)

	if err := s.payments.Insert(ctx, payment); err != nil {
		return nil, err
	}

	if payment.Status == domain.PaymentCompleted {
		s.publish(ctx, domain.PaymentEvent{
			Type:          EventPaymentCompleted,
			OrderID:       payment.OrderID,
			UserID:        payment.UserID,
			TransactionID: payment.TransactionID,
			Amount:        payment.Amount,
			Timestamp:     time.Now(),
		})
	} else {
		s.publish(ctx, domain.PaymentEvent{
			Type:          EventPaymentFailed,
			OrderID:       payment.OrderID,
			UserID:        payment.UserID,
			TransactionID: payment.TransactionID,
			Amount:        payment.Amount,
			Timestamp:     time.Now(),
		})
	}

	return payment, nil
}

// charge stands in for the payment provider call.
func charge(req domain.ProcessPaymentRequest) (domain.PaymentStatus, string) {
	if req.Amount > maxChargeAmount {
		return domain.PaymentFailed, "amount exceeds per-transaction limit"
	}
	return domain.PaymentCompleted, ""
}

func (s *PaymentService) ByTransaction(ctx context.Context, transactionID string) (*domain.Payment, error) {
	return s.payments.FindByTransaction(ctx, transactionID)
}

func (s *PaymentService) ByOrder(ctx context.Context, orderID string) (*domain.Payment, error) {
	return s.payments.FindByOrder(ctx, orderID)
}

func (s *PaymentService) List(ctx context.Context, limit int) ([]domain.Payment, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.payments.FindRecent(ctx, limit)
}

// Refund returns part or all of a completed payment. A zero amount
// refunds everything still refundable.
func (s *PaymentService) Refund(ctx context.Context, transactionID string, req domain.RefundRequest) (*domain.Payment, error) {
	payment, err := s.payments.FindByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.PaymentCompleted && payment.Status != domain.PaymentPartiallyRefunded {
		return nil, fmt.Errorf("%w: status is %s", ErrNotRefundable, payment.Status)
	}

	refundable := math.Round((payment.Amount-payment.RefundedAmount)*100) / 100
	amount := req.Amount
	if amount == 0 {
		amount = refundable
	}
	if amount > refundable {
		return nil, fmt.Errorf("%w: %.2f refundable", ErrRefundTooLarge, refundable)
	}

	newStatus := domain.PaymentPartiallyRefunded
	if amount == refundable {
		newStatus = domain.PaymentRefunded
	}

	refund := &domain.Refund{
		PaymentID: payment.ID,
		Amount:    amount,
		Reason:    req.Reason,
		CreatedAt: time.Now(),
	}
	if err := s.payments.ApplyRefund(ctx, payment.ID, refund, newStatus); err != nil {
		return nil, err
	}

	payment.RefundedAmount = math.Round((payment.RefundedAmount+amount)*100) / 100
	payment.Status = newStatus
	payment.UpdatedAt = time.Now()

	if newStatus == domain.PaymentRefunded {
		s.publish(ctx, domain.PaymentEvent{
			Type:          EventPaymentRefunded,
			OrderID:       payment.OrderID,
			UserID:        payment.UserID,
			TransactionID: payment.TransactionID,
			Amount:        amount,
			Timestamp:     time.Now(),
		})
	}
	return payment, nil
}

func (s *PaymentService) AddMethod(ctx context.Context, userID string, req domain.PaymentMethodRequest) (*domain.PaymentMethod, error) {
	method := &domain.PaymentMethod{
		UserID:      userID,
		Type:        req.Type,
		Brand:       req.Brand,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		IsDefault:   req.IsDefault,
		CreatedAt:   time.Now(),
	}
	if req.CardNumber != "" {
		method.MaskedCard = maskCard(req.CardNumber)
	}

	if err := s.methods.Insert(ctx, method); err != nil {
		return nil, err
	}
	if method.IsDefault {
		if err := s.methods.SetDefault(ctx, userID, method.ID); err != nil {
			return nil, err
		}
	}
	return method, nil
}

func (s *PaymentService) Methods(ctx context.Context, userID string) ([]domain.PaymentMethod, error) {
	return s.methods.FindByUser(ctx, userID)
}

func (s *PaymentService) RemoveMethod(ctx context.Context, userID string, methodID int64) error {
	return s.methods.Delete(ctx, userID, methodID)
}

func (s *PaymentService) SetDefaultMethod(ctx context.Context, userID string, methodID int64) error {
	return s.methods.SetDefault(ctx, userID, methodID)
}

// maskCard keeps only the last four digits. Full numbers are never
// stored.
func maskCard(number string) string {
	digits := strings.ReplaceAll(strings.ReplaceAll(number, " ", ""), "-", "")
	if len(digits) < 4 {
		return "****"
	}
	return "****" + digits[len(digits)-4:]
}

func (s *PaymentService) publish(ctx context.Context, event domain.PaymentEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("[payment-svc] failed to publish %s for order %s: %v", event.Type, event.OrderID, err)
	}
}
