package domain

import "time"

// EventMessage mirrors the payload api-svc publishes on the order-events
// topic. Fields not relevant to a given event type are zero.
type EventMessage struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id,omitempty"`
	UserID       int       `json:"user_id,omitempty"`
	TotalAmount  float64   `json:"total_amount,omitempty"`
	Rating       int       `json:"rating,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	EventOrderCreated    = "order_created"
	EventRatingSubmitted = "rating_submitted"
)
