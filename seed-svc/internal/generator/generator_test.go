package generator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		TotalOrders: 500,
		UserRange:   500,
		Window:      180 * 24 * time.Hour,
		Now:         time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func testMenus() map[int][]MenuEntry {
	return map[int][]MenuEntry{
		1: {{ItemID: 1, Price: 100}, {ItemID: 2, Price: 50}, {ItemID: 3, Price: 75}},
		2: {{ItemID: 4, Price: 200}},
		3: {}, // empty menu, orders against it are skipped
	}
}

func TestGenerate_SkipsEmptyMenus(t *testing.T) {
	gen := New(rand.New(rand.NewSource(42)))
	cfg := testConfig()

	orders := gen.Generate(cfg, []int{1, 2, 3}, testMenus())

	require.NotEmpty(t, orders)
	assert.Less(t, len(orders), cfg.TotalOrders)
	for _, order := range orders {
		assert.NotEqual(t, 3, order.RestaurantID)
	}
}

func TestGenerate_NoRestaurants(t *testing.T) {
	gen := New(rand.New(rand.NewSource(1)))

	orders := gen.Generate(testConfig(), nil, map[int][]MenuEntry{})

	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestGenerate_OrderShape(t *testing.T) {
	gen := New(rand.New(rand.NewSource(7)))
	cfg := testConfig()
	menus := testMenus()

	orders := gen.Generate(cfg, []int{1, 2}, menus)
	require.NotEmpty(t, orders)

	for _, order := range orders {
		assert.GreaterOrEqual(t, order.UserID, 1)
		assert.LessOrEqual(t, order.UserID, cfg.UserRange)
		assert.Contains(t, []string{StatusDelivered, StatusCancelled}, order.Status)

		assert.False(t, order.OrderTime.Before(cfg.Now.Add(-cfg.Window)))
		assert.False(t, order.OrderTime.After(cfg.Now))

		menu := menus[order.RestaurantID]
		assert.GreaterOrEqual(t, len(order.Items), 1)
		assert.LessOrEqual(t, len(order.Items), len(menu))
		assert.LessOrEqual(t, len(order.Items), 5)

		seen := map[int]bool{}
		total := 0.0
		for _, item := range order.Items {
			assert.False(t, seen[item.ItemID], "items must be distinct")
			seen[item.ItemID] = true
			assert.GreaterOrEqual(t, item.Quantity, 1)
			assert.LessOrEqual(t, item.Quantity, 3)
			total += float64(item.Quantity) * item.Price
		}
		assert.Equal(t, total, order.TotalAmount)
	}
}

func TestGenerate_DeliveredOrdersGetDeliveryAndRating(t *testing.T) {
	gen := New(rand.New(rand.NewSource(99)))
	orders := gen.Generate(testConfig(), []int{1, 2}, testMenus())

	delivered := 0
	for _, order := range orders {
		if order.Status == StatusDelivered {
			delivered++
			require.NotNil(t, order.Delivery)
			assert.Equal(t, 40, order.Delivery.ExpectedMinutes)
			assert.GreaterOrEqual(t, order.Delivery.ActualMinutes, 20)
			assert.LessOrEqual(t, order.Delivery.ActualMinutes, 60)
			assert.Equal(t, StatusDelivered, order.Delivery.Status)
			assert.GreaterOrEqual(t, order.Rating, 3)
			assert.LessOrEqual(t, order.Rating, 5)
		} else {
			assert.Nil(t, order.Delivery)
			assert.Zero(t, order.Rating)
		}
	}

	// 80/20 weighting should leave both statuses represented in a 500 draw.
	assert.Greater(t, delivered, 0)
	assert.Less(t, delivered, len(orders))
	assert.Greater(t, float64(delivered)/float64(len(orders)), 0.6)
}
