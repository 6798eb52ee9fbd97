package storage

import (
	"context"
	"database/sql"

	"foodordering/payment-svc/internal/domain"
	"foodordering/payment-svc/internal/service"
)

type PaymentMethodPostgresRepository struct {
	db *sql.DB
}

func NewPaymentMethodPostgresRepository(db *sql.DB) *PaymentMethodPostgresRepository {
	return &PaymentMethodPostgresRepository{db: db}
}

var _ service.PaymentMethodRepository = (*PaymentMethodPostgresRepository)(nil)

func (r *PaymentMethodPostgresRepository) Insert(ctx context.Context, method *domain.PaymentMethod) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO payment_methods (user_id, type, masked_card, brand, expiry_month, expiry_year, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		method.UserID, method.Type, method.MaskedCard, method.Brand,
		method.ExpiryMonth, method.ExpiryYear, method.IsDefault, method.CreatedAt).Scan(&method.ID)
}

func (r *PaymentMethodPostgresRepository) FindByUser(ctx context.Context, userID string) ([]domain.PaymentMethod, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, type, masked_card, brand, expiry_month, expiry_year, is_default, created_at
		FROM payment_methods WHERE user_id = $1 ORDER BY is_default DESC, created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := []domain.PaymentMethod{}
	for rows.Next() {
		var m domain.PaymentMethod
		if err := rows.Scan(&m.ID, &m.UserID, &m.Type, &m.MaskedCard, &m.Brand,
			&m.ExpiryMonth, &m.ExpiryYear, &m.IsDefault, &m.CreatedAt); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

func (r *PaymentMethodPostgresRepository) Delete(ctx context.Context, userID string, methodID int64) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM payment_methods WHERE id = $1 AND user_id = $2`, methodID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return service.ErrMethodNotFound
	}
	return nil
}

// SetDefault marks one method as default and clears the flag on the
// user's other methods in the same transaction.
func (r *PaymentMethodPostgresRepository) SetDefault(ctx context.Context, userID string, methodID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE payment_methods SET is_default = FALSE WHERE user_id = $1 AND id <> $2`, userID, methodID)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE payment_methods SET is_default = TRUE WHERE id = $1 AND user_id = $2`, methodID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return service.ErrMethodNotFound
	}

	return tx.Commit()
}
