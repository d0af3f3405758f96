package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	ActionCreated = "created"
	ActionPaid    = "paid"
)

type OrderEvent struct {
	OrderID       uint      `json:"order_id"`
	UserID        uint      `json:"user_id"`
	Total         float64   `json:"total"`
	PaymentStatus string    `json:"payment_status"`
	Action        string    `json:"action"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher fans order lifecycle events out to interested consumers
// (dashboards, kitchen displays). Delivery is best-effort.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) Publisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *kafkaPublisher) PublishOrderEvent(ctx context.Context, event *OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-%s-%d", event.Action, event.OrderID)),
		Value: value,
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher is used when no Kafka brokers are configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishOrderEvent(context.Context, *OrderEvent) error { return nil }

func (noopPublisher) Close() error { return nil }
