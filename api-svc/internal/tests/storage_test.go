package tests

import (
	"database/sql"
	"testing"

	"fooddash/api-svc/internal/domain"
	"fooddash/api-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func TestCreateOrder_TotalFromMenuPrices(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(1, 1, sqlmock.AnyArg(), domain.StatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("SELECT price FROM menu_items").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(100.0))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(7, 1, 2, 100.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT price FROM menu_items").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(50.0))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(7, 3, 1, 50.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE orders SET total_amount").
		WithArgs(250.0, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO deliveries").
		WithArgs(7, 25, 35, domain.StatusDelivered).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order := &domain.Order{UserID: 1, RestaurantID: 1}
	delivery := &domain.Delivery{ExpectedMinutes: 25, ActualMinutes: 35, Status: domain.StatusDelivered}
	items := []domain.OrderRequestItem{
		{ItemID: 1, Quantity: 2},
		{ItemID: 3, Quantity: 1},
	}

	err := repo.CreateOrder(order, items, delivery)
	require.NoError(t, err)

	assert.Equal(t, 7, order.ID)
	assert.Equal(t, 250.0, order.TotalAmount)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 100.0, order.Items[0].ItemPrice)
	assert.Equal(t, 7, order.Delivery.OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_MissingItemRollsBack(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(1, 1, sqlmock.AnyArg(), domain.StatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectQuery("SELECT price FROM menu_items").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	order := &domain.Order{UserID: 1, RestaurantID: 1}
	delivery := &domain.Delivery{ExpectedMinutes: 25, ActualMinutes: 25, Status: domain.StatusDelivered}

	err := repo.CreateOrder(order, []domain.OrderRequestItem{{ItemID: 99, Quantity: 1}}, delivery)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 99 not found in menu")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_EmptyItemsZeroTotal(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(2, 3, sqlmock.AnyArg(), domain.StatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectExec("UPDATE orders SET total_amount").
		WithArgs(0.0, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO deliveries").
		WithArgs(9, 30, 30, domain.StatusDelivered).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order := &domain.Order{UserID: 2, RestaurantID: 3}
	delivery := &domain.Delivery{ExpectedMinutes: 30, ActualMinutes: 30, Status: domain.StatusDelivered}

	err := repo.CreateOrder(order, nil, delivery)
	require.NoError(t, err)
	assert.Equal(t, 0.0, order.TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertRating(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec("INSERT INTO reviews").
		WithArgs(5, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertRating(5, 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMenu_EmptyRestaurant(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("SELECT id, restaurant_id, name, price, category, is_veg").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "price", "category", "is_veg"}))

	items, err := repo.ListMenu(42)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Len(t, items, 0)
}

func TestListMenuJoined_OrderedByRestaurantThenItem(t *testing.T) {
	repo, mock := setupRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "price", "restaurant_id", "restaurant_name", "cuisine"}).
		AddRow(1, "Dal Makhani", 100.0, 1, "Curry Leaf", "Indian").
		AddRow(2, "Paneer Tikka", 120.0, 1, "Curry Leaf", "Indian").
		AddRow(4, "Chow Mein", 80.0, 2, "Wok Star", "Chinese")
	mock.ExpectQuery(`JOIN restaurants r ON m.restaurant_id = r.id\s+ORDER BY m.restaurant_id, m.id`).
		WillReturnRows(rows)

	listings, err := repo.ListMenuJoined()
	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.Equal(t, 1, listings[0].RestaurantID)
	assert.Equal(t, "Curry Leaf", listings[1].RestaurantName)
	assert.Equal(t, 2, listings[2].RestaurantID)
	assert.Equal(t, "Chow Mein", listings[2].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRestaurants(t *testing.T) {
	repo, mock := setupRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "cuisine"}).
		AddRow(1, "Curry Leaf", "Indian").
		AddRow(2, "Wok Star", "Chinese")
	mock.ExpectQuery("SELECT id, name, cuisine FROM restaurants").WillReturnRows(rows)

	restaurants, err := repo.ListRestaurants()
	require.NoError(t, err)
	assert.Len(t, restaurants, 2)
	assert.Equal(t, "Curry Leaf", restaurants[0].Name)
}
