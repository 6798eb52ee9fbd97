package service

import (
	"context"

	"foodordering/order-svc/internal/domain"
)

type OrderServiceInterface interface {
	Create(ctx context.Context, userID string, req domain.CreateOrderRequest) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	All(ctx context.Context) ([]domain.Order, error)
	ByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error)
	ByStatus(ctx context.Context, status domain.Status) ([]domain.Order, error)
	Recent(ctx context.Context, limit int) ([]domain.Order, error)
	Stats(ctx context.Context) (*domain.Stats, error)
	UpdateStatus(ctx context.Context, id string, next domain.Status, changedBy string) (*domain.Order, error)
	Cancel(ctx context.Context, id, changedBy string) (*domain.Order, error)
	History(ctx context.Context, id string) ([]domain.StatusEvent, error)
	TrackingQR(ctx context.Context, id string) ([]byte, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Order, error)
	FindByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error)
	FindByStatus(ctx context.Context, status domain.Status) ([]domain.Order, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.Status, changedBy string) error
	StatusHistory(ctx context.Context, id string) ([]domain.StatusEvent, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
}

var _ OrderServiceInterface = (*OrderService)(nil)
