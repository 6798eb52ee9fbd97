package storage

import (
	"context"
	"encoding/json"

	"foodordering/order-svc/internal/domain"
	"foodordering/order-svc/internal/service"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes order events to the order_events topic, keyed
// by order so per-order ordering holds.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

var _ service.EventPublisher = (*KafkaPublisher)(nil)

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}
