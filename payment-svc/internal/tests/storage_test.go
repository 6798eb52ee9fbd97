package tests

import (
	"context"
	"testing"
	"time"

	"foodordering/payment-svc/internal/domain"
	"foodordering/payment-svc/internal/service"
	"foodordering/payment-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestPaymentPostgresRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	now := time.Now()
	payment := &domain.Payment{
		TransactionID: "TXN_abc",
		OrderID:       "order-1",
		UserID:        "user-1",
		Amount:        23.25,
		Currency:      "USD",
		Method:        "CARD",
		Status:        domain.PaymentCompleted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	mock.ExpectQuery("INSERT INTO payments").
		WithArgs("TXN_abc", "order-1", "user-1", 23.25, "USD", "CARD", string(domain.PaymentCompleted), "", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	err = repo.Insert(context.Background(), payment)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), payment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentPostgresRepository_Insert_ConcurrentDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	now := time.Now()
	payment := &domain.Payment{
		TransactionID: "TXN_def",
		OrderID:       "order-1",
		UserID:        "user-1",
		Amount:        23.25,
		Currency:      "USD",
		Method:        "CARD",
		Status:        domain.PaymentCompleted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	mock.ExpectQuery("INSERT INTO payments").
		WithArgs("TXN_def", "order-1", "user-1", 23.25, "USD", "CARD", string(domain.PaymentCompleted), "", now, now).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "idx_payments_order_completed"})

	err = repo.Insert(context.Background(), payment)
	assert.ErrorIs(t, err, service.ErrDuplicatePayment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentPostgresRepository_FindByTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "transaction_id", "order_id", "user_id", "amount", "refunded_amount",
			"currency", "method", "status", "failure_reason", "created_at", "updated_at",
		}).AddRow(int64(3), "TXN_abc", "order-1", "user-1", 23.25, 0.0, "USD", "CARD", "COMPLETED", "", now, now)
		mock.ExpectQuery("SELECT (.+) FROM payments WHERE transaction_id").WithArgs("TXN_abc").WillReturnRows(rows)

		payment, err := repo.FindByTransaction(context.Background(), "TXN_abc")
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentCompleted, payment.Status)
		assert.Equal(t, "order-1", payment.OrderID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM payments WHERE transaction_id").WithArgs("TXN_missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByTransaction(context.Background(), "TXN_missing")
		assert.ErrorIs(t, err, service.ErrPaymentNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentPostgresRepository_ApplyRefund(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	now := time.Now()
	refund := &domain.Refund{PaymentID: 3, Amount: 10, Reason: "late delivery", CreatedAt: now}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO refunds").
		WithArgs(int64(3), 10.0, "late delivery", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectExec("UPDATE payments SET refunded_amount").
		WithArgs(10.0, string(domain.PaymentPartiallyRefunded), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.ApplyRefund(context.Background(), 3, refund, domain.PaymentPartiallyRefunded)
	assert.NoError(t, err)
	assert.Equal(t, int64(9), refund.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentMethodPostgresRepository_SetDefault(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := storage.NewPaymentMethodPostgresRepository(db)

	t.Run("flips default atomically", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE payment_methods SET is_default = FALSE").
			WithArgs("user-1", int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("UPDATE payment_methods SET is_default = TRUE").
			WithArgs(int64(5), "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SetDefault(context.Background(), "user-1", 5)
		assert.NoError(t, err)
	})

	t.Run("unknown method", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE payment_methods SET is_default = FALSE").
			WithArgs("user-1", int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("UPDATE payment_methods SET is_default = TRUE").
			WithArgs(int64(99), "user-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.SetDefault(context.Background(), "user-1", 99)
		assert.ErrorIs(t, err, service.ErrMethodNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
