package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodordering/catalog-svc/internal/domain"
	"foodordering/catalog-svc/internal/mocks"
	"foodordering/catalog-svc/internal/service"
)

func TestOrderEventConsumer_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("order.created bumps popularity by quantity", func(t *testing.T) {
		items := mocks.NewMenuItemRepository(t)
		popularity := mocks.NewPopularityStore(t)
		consumer := service.NewOrderEventConsumer(nil, items, popularity)

		items.On("IncrementPopularity", ctx, "item-1", 2).Return(nil).Once()
		items.On("IncrementPopularity", ctx, "item-2", 1).Return(nil).Once()
		popularity.On("Increment", ctx, "rest-1", "item-1", 2).Return(nil).Once()
		popularity.On("Increment", ctx, "rest-1", "item-2", 1).Return(nil).Once()

		consumer.Handle(ctx, domain.OrderEvent{
			Type:         "order.created",
			OrderID:      "order-1",
			RestaurantID: "rest-1",
			Items: []domain.OrderLineItem{
				{MenuItemID: "item-1", Quantity: 2},
				{MenuItemID: "item-2", Quantity: 1},
			},
			Timestamp: time.Now(),
		})
	})

	t.Run("other event types are ignored", func(t *testing.T) {
		items := mocks.NewMenuItemRepository(t)
		popularity := mocks.NewPopularityStore(t)
		consumer := service.NewOrderEventConsumer(nil, items, popularity)

		consumer.Handle(ctx, domain.OrderEvent{
			Type:         "order.status_changed",
			RestaurantID: "rest-1",
			Items:        []domain.OrderLineItem{{MenuItemID: "item-1", Quantity: 3}},
		})
	})

	t.Run("zero quantity lines are skipped", func(t *testing.T) {
		items := mocks.NewMenuItemRepository(t)
		consumer := service.NewOrderEventConsumer(nil, items, nil)

		consumer.Handle(ctx, domain.OrderEvent{
			Type:         "order.created",
			RestaurantID: "rest-1",
			Items:        []domain.OrderLineItem{{MenuItemID: "item-1", Quantity: 0}},
		})
	})

	t.Run("mongo failure skips redis mirror for that line", func(t *testing.T) {
		items := mocks.NewMenuItemRepository(t)
		popularity := mocks.NewPopularityStore(t)
		consumer := service.NewOrderEventConsumer(nil, items, popularity)

		items.On("IncrementPopularity", ctx, "item-1", 2).Return(errors.New("write failed")).Once()
		items.On("IncrementPopularity", ctx, "item-2", 1).Return(nil).Once()
		popularity.On("Increment", ctx, "rest-1", "item-2", 1).Return(nil).Once()

		consumer.Handle(ctx, domain.OrderEvent{
			Type:         "order.created",
			RestaurantID: "rest-1",
			Items: []domain.OrderLineItem{
				{MenuItemID: "item-1", Quantity: 2},
				{MenuItemID: "item-2", Quantity: 1},
			},
		})
	})
}
