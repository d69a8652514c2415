package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"fooddash/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

// RecordOrder bumps the per-restaurant order count for the event day and the
// all-time revenue tally.
func (s *Store) RecordOrder(msg domain.EventMessage) error {
	ts := msg.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	dailyKey := "analytics:daily:" + ts.Format("2006-01-02")
	member := strconv.Itoa(msg.RestaurantID)
	if err := s.rdb.ZIncrBy(s.ctx, dailyKey, 1, member).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)

	return s.rdb.HIncrByFloat(s.ctx, "analytics:revenue", member, msg.TotalAmount).Err()
}

// RecordRating updates the restaurant's rating distribution and recomputes
// its average from the reviews table. Rating events carry only the order id,
// so the owning restaurant is resolved from the order row.
func (s *Store) RecordRating(msg domain.EventMessage) error {
	restaurantID := msg.RestaurantID
	if restaurantID == 0 {
		err := s.db.QueryRow("SELECT restaurant_id FROM orders WHERE id = $1", msg.OrderID).Scan(&restaurantID)
		if err != nil {
			return fmt.Errorf("resolve restaurant for order %d: %w", msg.OrderID, err)
		}
	}

	distKey := fmt.Sprintf("ratings:%d", restaurantID)
	if err := s.rdb.HIncrBy(s.ctx, distKey, strconv.Itoa(msg.Rating), 1).Err(); err != nil {
		return err
	}

	var avgRating float64
	err := s.db.QueryRow(`
		SELECT COALESCE(ROUND(AVG(r.rating)::numeric, 2), 0)
		FROM reviews r
		JOIN orders o ON r.order_id = o.id
		WHERE o.restaurant_id = $1`, restaurantID).Scan(&avgRating)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("restaurant:%d", restaurantID)
	return s.rdb.HSet(s.ctx, key, map[string]interface{}{
		"avg_rating":   avgRating,
		"last_updated": time.Now().Unix(),
	}).Err()
}
