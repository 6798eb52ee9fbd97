package service

import (
	"context"
	"encoding/json"
	"log"

	"foodordering/catalog-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the subset of kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// OrderEventConsumer tails the order_events topic and keeps menu item
// popularity counters up to date.
type OrderEventConsumer struct {
	reader     MessageReader
	items      MenuItemRepository
	popularity PopularityStore
}

func NewOrderEventConsumer(reader MessageReader, items MenuItemRepository, popularity PopularityStore) *OrderEventConsumer {
	return &OrderEventConsumer{reader: reader, items: items, popularity: popularity}
}

// Run blocks until the context is cancelled or the reader fails
// permanently. Malformed messages are logged and skipped, never retried.
func (c *OrderEventConsumer) Run(ctx context.Context) error {
	log.Println("[catalog-svc] order events consumer started")
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("[catalog-svc] skipping malformed order event: %v", err)
			continue
		}

		c.Handle(ctx, event)
	}
}

// Handle applies a single order event. Only order.created carries line
// items worth counting, everything else on the topic is ignored here.
func (c *OrderEventConsumer) Handle(ctx context.Context, event domain.OrderEvent) {
	if event.Type != "order.created" {
		return
	}

	for _, item := range event.Items {
		if item.Quantity <= 0 {
			continue
		}
		if err := c.items.IncrementPopularity(ctx, item.MenuItemID, item.Quantity); err != nil {
			log.Printf("[catalog-svc] failed to bump popularity for %s: %v", item.MenuItemID, err)
			continue
		}
		if c.popularity != nil {
			if err := c.popularity.Increment(ctx, event.RestaurantID, item.MenuItemID, item.Quantity); err != nil {
				log.Printf("[catalog-svc] failed to mirror popularity for %s: %v", item.MenuItemID, err)
			}
		}
	}
}
