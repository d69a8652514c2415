package service

import (
	"math/rand"
	"sync"
	"time"

	"fooddash/api-svc/internal/domain"
)

type OrderService struct {
	repo      OrderRepository
	events    EventSink
	qrEncoder QRGenerator

	// rng is shared across concurrent requests; math/rand.Rand is not
	// safe for concurrent use, so every draw holds mu.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewOrderService(repo OrderRepository, events EventSink, qr QRGenerator) *OrderService {
	return &OrderService{
		repo:      repo,
		events:    events,
		qrEncoder: qr,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Create persists the order atomically. An empty item list is accepted and
// produces a zero-total order, matching the permissive contract of the
// endpoint. Totals always come from menu prices, never from the client.
func (s *OrderService) Create(req domain.OrderRequest) (*domain.Order, error) {
	order := &domain.Order{
		UserID:       req.UserID,
		RestaurantID: req.RestaurantID,
	}

	delivery := s.simulateDelivery()
	if err := s.repo.CreateOrder(order, req.Items, delivery); err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.repo.SaveQRCode(order.ID, qr)
		}
	}

	if s.events != nil {
		s.events.Publish(domain.EventMessage{
			Type:         domain.EventOrderCreated,
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
			UserID:       order.UserID,
			TotalAmount:  order.TotalAmount,
		})
	}

	return order, nil
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	return s.repo.GetOrder(orderID)
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) simulateDelivery() *domain.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SimulateDelivery(s.rng)
}

// SimulateDelivery fabricates the delivery timing recorded with every order:
// expected uniform over [20,35] minutes, actual shifted by one of -5, 0 or
// +10. The caller owns synchronization of rng.
func SimulateDelivery(rng *rand.Rand) *domain.Delivery {
	expected := 20 + rng.Intn(16)
	offsets := []int{-5, 0, 10}
	return &domain.Delivery{
		ExpectedMinutes: expected,
		ActualMinutes:   expected + offsets[rng.Intn(len(offsets))],
		Status:          domain.StatusDelivered,
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
