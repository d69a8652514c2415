package service

import "fooddash/api-svc/internal/domain"

type CatalogRepository interface {
	ListRestaurants() ([]domain.Restaurant, error)
	ListMenu(restaurantID int) ([]domain.MenuItem, error)
	ListMenuJoined() ([]domain.MenuItemListing, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order, items []domain.OrderRequestItem, delivery *domain.Delivery) error
	GetOrder(orderID int) (*domain.Order, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type ReviewRepository interface {
	UpsertRating(orderID, rating int) error
}

// EventSink decouples services from the Kafka writer; a nil sink disables
// publishing.
type EventSink interface {
	Publish(msg domain.EventMessage)
}

type CatalogServiceInterface interface {
	Restaurants() ([]domain.Restaurant, error)
	Menu(restaurantID int) ([]domain.MenuItem, error)
	MenuJoined() ([]domain.MenuItemListing, error)
}

type OrderServiceInterface interface {
	Create(req domain.OrderRequest) (*domain.Order, error)
	Get(orderID int) (*domain.Order, error)
	GetQRCode(orderID int) ([]byte, error)
}

type ReviewServiceInterface interface {
	Submit(orderID, rating int) error
}
