package tests

import (
	"context"
	"testing"
	"time"

	"foodordering/order-svc/internal/domain"
	"foodordering/order-svc/internal/service"
	"foodordering/order-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPostgresRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	now := time.Now()
	order := &domain.Order{
		ID:           "order-1",
		UserID:       "user-1",
		RestaurantID: "rest-1",
		Status:       domain.StatusPending,
		TotalAmount:  23.25,
		Items: []domain.OrderItem{
			{OrderID: "order-1", MenuItemID: "item-1", Name: "Pizza", Price: 9.5, Quantity: 2},
		},
		DeliveryAddress: domain.Address{Street: "1 Main St", City: "Springfield"},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(order.ID, order.UserID, order.RestaurantID, string(order.Status), order.TotalAmount,
			"1 Main St", "Springfield", "", "", "", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(order.ID, "item-1", "Pizza", 9.5, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec("INSERT INTO order_status_events").
		WithArgs(order.ID, string(domain.StatusPending), order.UserID, now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = repo.Insert(context.Background(), order)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), order.Items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	now := time.Now()

	t.Run("found with items", func(t *testing.T) {
		orderRows := sqlmock.NewRows([]string{
			"id", "user_id", "restaurant_id", "status", "total_amount",
			"street", "city", "state", "zip_code", "notes", "created_at", "updated_at",
		}).AddRow("order-1", "user-1", "rest-1", "PENDING", 23.25, "1 Main St", "Springfield", "", "", "", now, now)
		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").WithArgs("order-1").WillReturnRows(orderRows)

		itemRows := sqlmock.NewRows([]string{"id", "order_id", "menu_item_id", "name", "price", "quantity"}).
			AddRow(int64(7), "order-1", "item-1", "Pizza", 9.5, 2)
		mock.ExpectQuery("SELECT (.+) FROM order_items").WithArgs("order-1").WillReturnRows(itemRows)

		order, err := repo.FindByID(context.Background(), "order-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, order.Status)
		assert.Len(t, order.Items, 1)
		assert.Equal(t, "Pizza", order.Items[0].Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByID(context.Background(), "missing")
		assert.ErrorIs(t, err, service.ErrOrderNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	t.Run("guard matches", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders SET status").
			WithArgs(string(domain.StatusConfirmed), "order-1", string(domain.StatusPending)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO order_status_events").
			WithArgs("order-1", string(domain.StatusPending), string(domain.StatusConfirmed), "admin-1").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.UpdateStatus(context.Background(), "order-1", domain.StatusPending, domain.StatusConfirmed, "admin-1")
		assert.NoError(t, err)
	})

	t.Run("concurrent change detected", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders SET status").
			WithArgs(string(domain.StatusConfirmed), "order-1", string(domain.StatusPending)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.UpdateStatus(context.Background(), "order-1", domain.StatusPending, domain.StatusConfirmed, "admin-1")
		assert.ErrorIs(t, err, service.ErrStatusConflict)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_FindRecent_LimitsToLastDay(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "restaurant_id", "status", "total_amount",
		"street", "city", "state", "zip_code", "notes", "created_at", "updated_at",
	}).AddRow("order-1", "user-1", "rest-1", "PENDING", 23.25, "1 Main St", "Springfield", "", "", "", now, now)
	mock.ExpectQuery(`SELECT (.+) FROM orders WHERE created_at >= now\(\) - interval '24 hours' ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(20).
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT (.+) FROM order_items").WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "menu_item_id", "name", "price", "quantity"}))

	orders, err := repo.FindRecent(context.Background(), 20)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Stats(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	mock.ExpectQuery("SELECT status, COUNT").WillReturnRows(
		sqlmock.NewRows([]string{"status", "count"}).
			AddRow("PENDING", int64(3)).
			AddRow("DELIVERED", int64(5)))
	mock.ExpectQuery("SELECT COALESCE").WithArgs(string(domain.StatusDelivered)).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(120.50))

	stats, err := repo.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(8), stats.TotalOrders)
	assert.Equal(t, int64(5), stats.CountsByStatus[domain.StatusDelivered])
	assert.Equal(t, 120.50, stats.DeliveredRevenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}
