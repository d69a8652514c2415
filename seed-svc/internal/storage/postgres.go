package storage

import (
	"database/sql"
	"fmt"

	"fooddash/seed-svc/internal/generator"
)

type SeedStore struct {
	DB *sql.DB
}

func NewSeedStore(db *sql.DB) *SeedStore {
	return &SeedStore{DB: db}
}

func (s *SeedStore) RestaurantIDs() ([]int, error) {
	rows, err := s.DB.Query("SELECT id FROM restaurants")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *SeedStore) MenusByRestaurant(restaurantIDs []int) (map[int][]generator.MenuEntry, error) {
	menus := make(map[int][]generator.MenuEntry, len(restaurantIDs))

	for _, restaurantID := range restaurantIDs {
		rows, err := s.DB.Query("SELECT id, price FROM menu_items WHERE restaurant_id = $1", restaurantID)
		if err != nil {
			return nil, err
		}

		entries := []generator.MenuEntry{}
		for rows.Next() {
			var entry generator.MenuEntry
			if err := rows.Scan(&entry.ItemID, &entry.Price); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
		rows.Close()

		menus[restaurantID] = entries
	}

	return menus, nil
}

// InsertOrders writes the whole batch on a single transaction with one commit
// at the end; any failure rolls back the entire run.
func (s *SeedStore) InsertOrders(orders []generator.Order) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, order := range orders {
		if _, err := tx.Exec(
			"INSERT INTO users (id) VALUES ($1) ON CONFLICT (id) DO NOTHING",
			order.UserID); err != nil {
			return fmt.Errorf("insert user %d: %w", order.UserID, err)
		}

		var orderID int
		err := tx.QueryRow(`
			INSERT INTO orders (user_id, restaurant_id, order_time, total_amount, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			order.UserID, order.RestaurantID, order.OrderTime, order.TotalAmount, order.Status).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for _, item := range order.Items {
			if _, err := tx.Exec(`
				INSERT INTO order_items (order_id, item_id, quantity, item_price)
				VALUES ($1, $2, $3, $4)`,
				orderID, item.ItemID, item.Quantity, item.Price); err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
		}

		if order.Delivery != nil {
			if _, err := tx.Exec(`
				INSERT INTO deliveries (order_id, expected_minutes, actual_minutes, status)
				VALUES ($1, $2, $3, $4)`,
				orderID, order.Delivery.ExpectedMinutes, order.Delivery.ActualMinutes, order.Delivery.Status); err != nil {
				return fmt.Errorf("insert delivery: %w", err)
			}

			if _, err := tx.Exec(
				"INSERT INTO reviews (order_id, rating) VALUES ($1, $2)",
				orderID, order.Rating); err != nil {
				return fmt.Errorf("insert review: %w", err)
			}
		}
	}

	return tx.Commit()
}
