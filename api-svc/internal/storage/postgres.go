package storage

import (
	"database/sql"
	"fmt"
	"time"

	"fooddash/api-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query("SELECT id, name, cuisine FROM restaurants")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Cuisine); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, nil
}

func (r *PostgresRepository) ListMenu(restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, price, category, is_veg
		FROM menu_items
		WHERE restaurant_id = $1`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.Category, &item.IsVeg); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) ListMenuJoined() ([]domain.MenuItemListing, error) {
	rows, err := r.DB.Query(`
		SELECT m.id, m.name, m.price, m.restaurant_id, r.name AS restaurant_name, r.cuisine
		FROM menu_items m
		JOIN restaurants r ON m.restaurant_id = r.id
		ORDER BY m.restaurant_id, m.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []domain.MenuItemListing{}
	for rows.Next() {
		var l domain.MenuItemListing
		if err := rows.Scan(&l.ID, &l.Name, &l.Price, &l.RestaurantID, &l.RestaurantName, &l.Cuisine); err != nil {
			continue
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// CreateOrder runs the whole order flow in one transaction: insert the order
// with a placeholder total, copy the current menu price onto each order item,
// update the total to the computed sum and attach the simulated delivery.
// A missing menu item aborts the transaction, leaving no rows behind.
func (r *PostgresRepository) CreateOrder(order *domain.Order, items []domain.OrderRequestItem, delivery *domain.Delivery) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	order.Status = domain.StatusConfirmed
	order.OrderTime = time.Now()

	err = tx.QueryRow(`
		INSERT INTO orders (user_id, restaurant_id, order_time, total_amount, status)
		VALUES ($1, $2, $3, 0, $4)
		RETURNING id`,
		order.UserID, order.RestaurantID, order.OrderTime, order.Status).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	total := 0.0
	order.Items = nil
	for _, item := range items {
		var price float64
		err := tx.QueryRow("SELECT price FROM menu_items WHERE id = $1", item.ItemID).Scan(&price)
		if err == sql.ErrNoRows {
			return fmt.Errorf("item %d not found in menu", item.ItemID)
		}
		if err != nil {
			return fmt.Errorf("look up item %d: %w", item.ItemID, err)
		}

		total += price * float64(item.Quantity)

		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, item_id, quantity, item_price)
			VALUES ($1, $2, $3, $4)`,
			order.ID, item.ItemID, item.Quantity, price); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}

		order.Items = append(order.Items, domain.OrderItem{
			OrderID:   order.ID,
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			ItemPrice: price,
		})
	}

	if _, err := tx.Exec("UPDATE orders SET total_amount = $1 WHERE id = $2", total, order.ID); err != nil {
		return fmt.Errorf("update order total: %w", err)
	}
	order.TotalAmount = total

	delivery.OrderID = order.ID
	if _, err := tx.Exec(`
		INSERT INTO deliveries (order_id, expected_minutes, actual_minutes, status)
		VALUES ($1, $2, $3, $4)`,
		delivery.OrderID, delivery.ExpectedMinutes, delivery.ActualMinutes, delivery.Status); err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	order.Delivery = delivery

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, user_id, restaurant_id, order_time, total_amount, status
		FROM orders WHERE id = $1`, orderID).
		Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.OrderTime, &order.TotalAmount, &order.Status)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT order_id, item_id, quantity, item_price
		FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.OrderID, &item.ItemID, &item.Quantity, &item.ItemPrice); err != nil {
			continue
		}
		order.Items = append(order.Items, item)
	}

	var delivery domain.Delivery
	err = r.DB.QueryRow(`
		SELECT order_id, expected_minutes, actual_minutes, status
		FROM deliveries WHERE order_id = $1`, orderID).
		Scan(&delivery.OrderID, &delivery.ExpectedMinutes, &delivery.ActualMinutes, &delivery.Status)
	if err == nil {
		order.Delivery = &delivery
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	return &order, nil
}

// UpsertRating keys on the reviews.order_id uniqueness constraint; a second
// submission for the same order overwrites the first.
func (r *PostgresRepository) UpsertRating(orderID, rating int) error {
	_, err := r.DB.Exec(`
		INSERT INTO reviews (order_id, rating)
		VALUES ($1, $2)
		ON CONFLICT (order_id) DO UPDATE SET rating = EXCLUDED.rating`,
		orderID, rating)
	return err
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr)
	if err != nil {
		return nil, err
	}
	return qr, nil
}
