package storage

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables idempotently so a fresh database can serve
// requests without a separate migration step. The reviews uniqueness
// constraint on order_id backs the rating upsert.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			cuisine TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			is_veg BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id INT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			user_id INT NOT NULL REFERENCES users(id),
			restaurant_id INT NOT NULL REFERENCES restaurants(id),
			order_time TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			total_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			qr_code BYTEA
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id INT NOT NULL REFERENCES orders(id),
			item_id INT NOT NULL REFERENCES menu_items(id),
			quantity INT NOT NULL,
			item_price NUMERIC(10,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS deliveries (
			order_id INT NOT NULL UNIQUE REFERENCES orders(id),
			expected_minutes INT NOT NULL,
			actual_minutes INT NOT NULL,
			status TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			order_id INT NOT NULL UNIQUE REFERENCES orders(id),
			rating INT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
