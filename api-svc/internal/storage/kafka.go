package storage

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"fooddash/api-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// EventPublisher emits order and rating events for the analytics consumer.
// Publishing is best-effort: the API response never depends on it.
type EventPublisher struct {
	Writer *kafka.Writer
	ctx    context.Context
}

func NewEventPublisher(writer *kafka.Writer) *EventPublisher {
	return &EventPublisher{Writer: writer, ctx: context.Background()}
}

func (p *EventPublisher) Publish(msg domain.EventMessage) {
	if p == nil || p.Writer == nil {
		return
	}

	msg.EventID = uuid.NewString()
	msg.Timestamp = time.Now()

	value, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[api] failed to marshal %s event: %v", msg.Type, err)
		return
	}

	if err := p.Writer.WriteMessages(p.ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(msg.OrderID)),
		Value: value,
	}); err != nil {
		log.Printf("[api] failed to publish %s event for order %d: %v", msg.Type, msg.OrderID, err)
	}
}

func (p *EventPublisher) Close() {
	if p != nil && p.Writer != nil {
		p.Writer.Close()
	}
}
