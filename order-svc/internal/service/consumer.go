package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"foodordering/order-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the subset of kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// PaymentEventConsumer reacts to payment outcomes published on the
// order_events topic: a completed payment confirms the order, a refund
// cancels it while cancellation is still possible.
type PaymentEventConsumer struct {
	reader MessageReader
	orders OrderServiceInterface
}

func NewPaymentEventConsumer(reader MessageReader, orders OrderServiceInterface) *PaymentEventConsumer {
	return &PaymentEventConsumer{reader: reader, orders: orders}
}

// Run blocks until the context is cancelled or the reader fails
// permanently. Malformed messages are logged and skipped.
func (c *PaymentEventConsumer) Run(ctx context.Context) error {
	log.Println("[order-svc] payment events consumer started")
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
			log.Printf("[order-svc] skipping malformed event: %v", err)
			continue
		}

		c.Handle(ctx, event)
	}
}

func (c *PaymentEventConsumer) Handle(ctx context.Context, event domain.OrderEvent) {
	switch event.Type {
	case "payment.completed":
		_, err := c.orders.UpdateStatus(ctx, event.OrderID, domain.StatusConfirmed, "payment-svc")
		if err != nil && !errors.Is(err, ErrInvalidTransition) {
			log.Printf("[order-svc] failed to confirm order %s after payment: %v", event.OrderID, err)
		}
	case "payment.refunded":
		_, err := c.orders.Cancel(ctx, event.OrderID, "payment-svc")
		if err != nil && !errors.Is(err, ErrNotCancellable) {
			log.Printf("[order-svc] failed to cancel order %s after refund: %v", event.OrderID, err)
		}
	}
}
