package service

import (
	"context"
	"encoding/json"
	"log"

	"fooddash/analytics-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Analytics Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.EventMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(msg)
	}
}

// ProcessEvent dispatches by event type; failures are logged and the loop
// moves on, aggregates are best-effort.
func (c *Consumer) ProcessEvent(msg domain.EventMessage) {
	switch msg.Type {
	case domain.EventOrderCreated:
		if err := c.Store.RecordOrder(msg); err != nil {
			log.Printf("Error recording order %d: %v", msg.OrderID, err)
			return
		}
		log.Printf("Recorded order %d for restaurant %d", msg.OrderID, msg.RestaurantID)
	case domain.EventRatingSubmitted:
		if err := c.Store.RecordRating(msg); err != nil {
			log.Printf("Error recording rating for order %d: %v", msg.OrderID, err)
			return
		}
		log.Printf("Recorded rating %d for order %d", msg.Rating, msg.OrderID)
	default:
		log.Printf("Skipping unknown event type %q", msg.Type)
	}
}
