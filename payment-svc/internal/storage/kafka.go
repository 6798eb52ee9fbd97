package storage

import (
	"context"
	"encoding/json"

	"foodordering/payment-svc/internal/domain"
	"foodordering/payment-svc/internal/service"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes payment events to the order_events topic so the
// order service picks them up on its existing consumer.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

var _ service.EventPublisher = (*KafkaPublisher)(nil)

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.PaymentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}
