package domain

import "time"

type Restaurant struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Cuisine string `json:"cuisine"`
}

type MenuItem struct {
	ID           int     `json:"id"`
	RestaurantID int     `json:"restaurant_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	IsVeg        bool    `json:"is_veg"`
}

// MenuItemListing is the joined row served by the debug listing endpoint.
type MenuItemListing struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	RestaurantID   int     `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	Cuisine        string  `json:"cuisine"`
}

type Order struct {
	ID           int         `json:"id"`
	UserID       int         `json:"user_id"`
	RestaurantID int         `json:"restaurant_id"`
	OrderTime    time.Time   `json:"order_time"`
	TotalAmount  float64     `json:"total_amount"`
	Status       string      `json:"status"`
	Items        []OrderItem `json:"items,omitempty"`
	Delivery     *Delivery   `json:"delivery,omitempty"`
}

type OrderItem struct {
	OrderID  int `json:"order_id,omitempty"`
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
	// ItemPrice is the menu price copied at order time; later menu edits do
	// not change it.
	ItemPrice float64 `json:"item_price"`
}

type Delivery struct {
	OrderID         int    `json:"order_id,omitempty"`
	ExpectedMinutes int    `json:"expected_minutes"`
	ActualMinutes   int    `json:"actual_minutes"`
	Status          string `json:"status"`
}

type Review struct {
	OrderID int `json:"order_id"`
	Rating  int `json:"rating"`
}

// OrderRequest is the POST /order payload.
type OrderRequest struct {
	UserID       int                `json:"user_id"`
	RestaurantID int                `json:"restaurant_id"`
	Items        []OrderRequestItem `json:"items"`
}

type OrderRequestItem struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// RatingRequest is the POST /rating payload.
type RatingRequest struct {
	OrderID int `json:"order_id"`
	Rating  int `json:"rating"`
}

const (
	StatusConfirmed = "CONFIRMED"
	StatusDelivered = "DELIVERED"
	StatusCancelled = "CANCELLED"
)

// EventMessage is published to Kafka after successful writes so downstream
// aggregation can react without touching the request path.
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
