// Package generator produces synthetic order history for the demo schema.
// Selection logic is separated from persistence and driven by an injected
// rand source so runs are reproducible under test.
package generator

import (
	"math/rand"
	"time"
)

const (
	StatusDelivered = "DELIVERED"
	StatusCancelled = "CANCELLED"

	deliveredWeight  = 0.8
	maxItemsPerOrder = 5
	maxQuantity      = 3
)

type Config struct {
	TotalOrders int
	// UserRange bounds the synthetic user id pool: ids are drawn uniformly
	// from [1, UserRange].
	UserRange int
	// Window is the trailing period order timestamps are spread over.
	Window time.Duration
	Now    time.Time
}

type MenuEntry struct {
	ItemID int
	Price  float64
}

type Item struct {
	ItemID   int
	Quantity int
	Price    float64
}

type Delivery struct {
	ExpectedMinutes int
	ActualMinutes   int
	Status          string
}

type Order struct {
	UserID       int
	RestaurantID int
	OrderTime    time.Time
	Status       string
	TotalAmount  float64
	Items        []Item
	// Delivery and Rating are set only for delivered orders.
	Delivery *Delivery
	Rating   int
}

type Generator struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate rolls cfg.TotalOrders candidate orders against the given menus.
// Restaurants with an empty menu are skipped, so the result may hold fewer
// orders than requested; with no restaurants at all there is nothing to
// draw from and the result is empty.
func (g *Generator) Generate(cfg Config, restaurantIDs []int, menus map[int][]MenuEntry) []Order {
	orders := []Order{}
	if len(restaurantIDs) == 0 {
		return orders
	}

	for i := 0; i < cfg.TotalOrders; i++ {
		restaurantID := restaurantIDs[g.rng.Intn(len(restaurantIDs))]
		menu := menus[restaurantID]
		if len(menu) == 0 {
			continue
		}

		order := Order{
			UserID:       1 + g.rng.Intn(cfg.UserRange),
			RestaurantID: restaurantID,
			OrderTime:    g.randomTime(cfg),
			Status:       g.randomStatus(),
		}

		order.Items = g.pickItems(menu)
		for _, item := range order.Items {
			order.TotalAmount += float64(item.Quantity) * item.Price
		}

		if order.Status == StatusDelivered {
			order.Delivery = &Delivery{
				ExpectedMinutes: 40,
				ActualMinutes:   20 + g.rng.Intn(41),
				Status:          StatusDelivered,
			}
			order.Rating = 3 + g.rng.Intn(3)
		}

		orders = append(orders, order)
	}

	return orders
}

func (g *Generator) randomTime(cfg Config) time.Time {
	offset := time.Duration(g.rng.Float64() * float64(cfg.Window))
	return cfg.Now.Add(-cfg.Window).Add(offset)
}

func (g *Generator) randomStatus() string {
	if g.rng.Float64() < deliveredWeight {
		return StatusDelivered
	}
	return StatusCancelled
}

// pickItems samples between 1 and min(5, len(menu)) distinct menu entries
// without replacement, each with a quantity in [1,3].
func (g *Generator) pickItems(menu []MenuEntry) []Item {
	limit := maxItemsPerOrder
	if len(menu) < limit {
		limit = len(menu)
	}
	count := 1 + g.rng.Intn(limit)

	items := make([]Item, 0, count)
	for _, idx := range g.rng.Perm(len(menu))[:count] {
		items = append(items, Item{
			ItemID:   menu[idx].ItemID,
			Quantity: 1 + g.rng.Intn(maxQuantity),
			Price:    menu[idx].Price,
		})
	}
	return items
}
