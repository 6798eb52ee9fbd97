package storage

import (
	"context"
	"encoding/json"

	"foodordering/catalog-svc/internal/domain"
	"foodordering/catalog-svc/internal/service"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes catalog events to the catalog_events topic,
// keyed by restaurant so per-restaurant ordering holds.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

var _ service.EventPublisher = (*KafkaPublisher)(nil)

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.CatalogEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RestaurantID),
		Value: payload,
	})
}
