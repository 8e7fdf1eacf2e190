package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"tableside/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher streams order lifecycle events to the orders topic.
// Messages are keyed by order id so events for one order stay ordered.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.OrderID)),
		Value: payload,
	})
}
