// Package mocks provides testify mocks for the repository and collaborator
// interfaces consumed by the service layer.
package mocks

import (
	"fooddash/api-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) ListRestaurants() ([]domain.Restaurant, error) {
	args := m.Called()
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *CatalogRepository) ListMenu(restaurantID int) ([]domain.MenuItem, error) {
	args := m.Called(restaurantID)
	var items []domain.MenuItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.MenuItem)
	}
	return items, args.Error(1)
}

func (m *CatalogRepository) ListMenuJoined() ([]domain.MenuItemListing, error) {
	args := m.Called()
	var listings []domain.MenuItemListing
	if args.Get(0) != nil {
		listings = args.Get(0).([]domain.MenuItemListing)
	}
	return listings, args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(order *domain.Order, items []domain.OrderRequestItem, delivery *domain.Delivery) error {
	args := m.Called(order, items, delivery)
	return args.Error(0)
}

func (m *OrderRepository) GetOrder(orderID int) (*domain.Order, error) {
	args := m.Called(orderID)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderRepository) SaveQRCode(orderID int, qr []byte) error {
	args := m.Called(orderID, qr)
	return args.Error(0)
}

func (m *OrderRepository) GetQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var qr []byte
	if args.Get(0) != nil {
		qr = args.Get(0).([]byte)
	}
	return qr, args.Error(1)
}

type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) UpsertRating(orderID, rating int) error {
	args := m.Called(orderID, rating)
	return args.Error(0)
}

type EventSink struct {
	mock.Mock
}

func (m *EventSink) Publish(msg domain.EventMessage) {
	m.Called(msg)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var qr []byte
	if args.Get(0) != nil {
		qr = args.Get(0).([]byte)
	}
	return qr, args.Error(1)
}
