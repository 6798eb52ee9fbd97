package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"foodordering/config"
	"foodordering/order-svc/internal/domain"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotCancellable    = errors.New("order can no longer be cancelled")
	ErrStatusConflict    = errors.New("order status changed concurrently")
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderCompleted     = "order.completed"
)

type OrderService struct {
	repo      OrderRepository
	publisher EventPublisher
}

func NewOrderService(repo OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{repo: repo, publisher: publisher}
}

// Create persists a new PENDING order. The total is computed server
// side from the line items, client-sent totals are never trusted.
func (s *OrderService) Create(ctx context.Context, userID string, req domain.CreateOrderRequest) (*domain.Order, error) {
	now := time.Now()
	order := &domain.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		RestaurantID:    req.RestaurantID,
		Status:          domain.StatusPending,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var total float64
	for _, item := range req.Items {
		total += item.Price * float64(item.Quantity)
		order.Items = append(order.Items, domain.OrderItem{
			OrderID:    order.ID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}
	order.TotalAmount = math.Round(total*100) / 100

	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, err
	}

	lines := make([]domain.OrderLineItem, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, domain.OrderLineItem{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
	}
	s.publish(ctx, domain.OrderEvent{
		Type:         EventOrderCreated,
		OrderID:      order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		Items:        lines,
		Timestamp:    time.Now(),
	})

	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) All(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}

func (s *OrderService) ByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *OrderService) ByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return s.repo.FindByRestaurant(ctx, restaurantID)
}

func (s *OrderService) ByStatus(ctx context.Context, status domain.Status) ([]domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	return s.repo.FindByStatus(ctx, status)
}

func (s *OrderService) Recent(ctx context.Context, limit int) ([]domain.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.FindRecent(ctx, limit)
}

func (s *OrderService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.Stats(ctx)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, next domain.Status, changedBy string) (*domain.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, id, order.Status, next, changedBy); err != nil {
		return nil, err
	}

	previous := order.Status
	order.Status = next
	order.UpdatedAt = time.Now()

	s.publish(ctx, domain.OrderEvent{
		Type:         EventOrderStatusChanged,
		OrderID:      order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		Status:       next,
		Timestamp:    time.Now(),
	})
	if next == domain.StatusDelivered {
		s.publish(ctx, domain.OrderEvent{
			Type:         EventOrderCompleted,
			OrderID:      order.ID,
			UserID:       order.UserID,
			RestaurantID: order.RestaurantID,
			Status:       next,
			TotalAmount:  order.TotalAmount,
			Timestamp:    time.Now(),
		})
	}

	log.Printf("[order-svc] order %s: %s -> %s by %s", order.ID, previous, next, changedBy)
	return order, nil
}

func (s *OrderService) Cancel(ctx context.Context, id, changedBy string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.Cancellable() {
		return nil, fmt.Errorf("%w: status is %s", ErrNotCancellable, order.Status)
	}

	if err := s.repo.UpdateStatus(ctx, id, order.Status, domain.StatusCancelled, changedBy); err != nil {
		return nil, err
	}

	order.Status = domain.StatusCancelled
	order.UpdatedAt = time.Now()

	s.publish(ctx, domain.OrderEvent{
		Type:         EventOrderStatusChanged,
		OrderID:      order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		Status:       domain.StatusCancelled,
		Timestamp:    time.Now(),
	})
	return order, nil
}

func (s *OrderService) History(ctx context.Context, id string) ([]domain.StatusEvent, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.StatusHistory(ctx, id)
}

// TrackingQR renders a PNG QR code pointing at the public tracking page
// for the order.
func (s *OrderService) TrackingQR(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	base := config.Getenv("TRACKING_BASE_URL", "http://localhost:8080")
	return qrcode.Encode(base+"/orders/"+id+"/track", qrcode.Medium, 256)
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("[order-svc] failed to publish %s for order %s: %v", event.Type, event.OrderID, err)
	}
}
