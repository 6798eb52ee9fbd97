package storage

import (
	"context"
	"database/sql"
	"errors"

	"foodordering/payment-svc/internal/domain"
	"foodordering/payment-svc/internal/service"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ service.PaymentRepository = (*PostgresRepository)(nil)

// EnsureSchema creates the payment tables when they do not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS payments (
			id BIGSERIAL PRIMARY KEY,
			transaction_id TEXT NOT NULL UNIQUE,
			order_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			amount NUMERIC(10,2) NOT NULL,
			refunded_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			currency TEXT NOT NULL,
			method TEXT NOT NULL,
			status TEXT NOT NULL,
			failure_reason TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS refunds (
			id BIGSERIAL PRIMARY KEY,
			payment_id BIGINT NOT NULL REFERENCES payments(id),
			amount NUMERIC(10,2) NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS payment_methods (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			type TEXT NOT NULL,
			masked_card TEXT NOT NULL DEFAULT '',
			brand TEXT NOT NULL DEFAULT '',
			expiry_month INT NOT NULL DEFAULT 0,
			expiry_year INT NOT NULL DEFAULT 0,
			is_default BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_payments_order ON payments(order_id);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_payments_order_completed ON payments(order_id) WHERE status = 'COMPLETED';
		CREATE INDEX IF NOT EXISTS idx_payment_methods_user ON payment_methods(user_id);
	`)
	return err
}

const paymentColumns = `id, transaction_id, order_id, user_id, amount, refunded_amount, currency, method, status, failure_reason, created_at, updated_at`

// Insert relies on the partial unique index on (order_id) for COMPLETED
// rows to reject concurrent duplicate charges the service-level check
// cannot see.
func (r *PostgresRepository) Insert(ctx context.Context, payment *domain.Payment) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO payments (transaction_id, order_id, user_id, amount, refunded_amount, currency, method, status, failure_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6, $7, $8, $9, $10) RETURNING id`,
		payment.TransactionID, payment.OrderID, payment.UserID, payment.Amount,
		payment.Currency, payment.Method, payment.Status, payment.FailureReason,
		payment.CreatedAt, payment.UpdatedAt).Scan(&payment.ID)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" && pqErr.Constraint == "idx_payments_order_completed" {
		return service.ErrDuplicatePayment
	}
	return err
}

func (r *PostgresRepository) FindByTransaction(ctx context.Context, transactionID string) (*domain.Payment, error) {
	return r.findOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE transaction_id = $1`, transactionID)
}

func (r *PostgresRepository) FindByOrder(ctx context.Context, orderID string) (*domain.Payment, error) {
	return r.findOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE order_id = $1 ORDER BY created_at DESC LIMIT 1`, orderID)
}

func (r *PostgresRepository) FindCompletedByOrder(ctx context.Context, orderID string) (*domain.Payment, error) {
	return r.findOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE order_id = $1 AND status = 'COMPLETED' LIMIT 1`, orderID)
}

func (r *PostgresRepository) FindRecent(ctx context.Context, limit int) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// ApplyRefund records the refund row and moves the payment's refunded
// total and status in one transaction.
func (r *PostgresRepository) ApplyRefund(ctx context.Context, paymentID int64, refund *domain.Refund, newStatus domain.PaymentStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO refunds (payment_id, amount, reason, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		paymentID, refund.Amount, refund.Reason, refund.CreatedAt).Scan(&refund.ID)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE payments SET refunded_amount = refunded_amount + $1, status = $2, updated_at = now()
		WHERE id = $3`,
		refund.Amount, newStatus, paymentID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return service.ErrPaymentNotFound
	}

	return tx.Commit()
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, args ...interface{}) (*domain.Payment, error) {
	var p domain.Payment
	err := scanPayment(r.db.QueryRowContext(ctx, query, args...), &p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner, p *domain.Payment) error {
	return row.Scan(
		&p.ID, &p.TransactionID, &p.OrderID, &p.UserID, &p.Amount, &p.RefundedAmount,
		&p.Currency, &p.Method, &p.Status, &p.FailureReason, &p.CreatedAt, &p.UpdatedAt)
}
