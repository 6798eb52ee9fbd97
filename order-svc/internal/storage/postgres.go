package storage

import (
	"context"
	"database/sql"
	"errors"

	"foodordering/order-svc/internal/domain"
	"foodordering/order-svc/internal/service"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ service.OrderRepository = (*PostgresRepository)(nil)

// EnsureSchema creates the order tables when they do not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			restaurant_id TEXT NOT NULL,
			status TEXT NOT NULL,
			total_amount NUMERIC(10,2) NOT NULL,
			street TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			zip_code TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS order_items (
			id BIGSERIAL PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id),
			menu_item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			quantity INT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS order_status_events (
			id BIGSERIAL PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id),
			from_status TEXT NOT NULL DEFAULT '',
			to_status TEXT NOT NULL,
			changed_by TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id);
		CREATE INDEX IF NOT EXISTS idx_orders_restaurant ON orders(restaurant_id);
		CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
	`)
	return err
}

func (r *PostgresRepository) Insert(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, restaurant_id, status, total_amount, street, city, state, zip_code, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		order.ID, order.UserID, order.RestaurantID, order.Status, order.TotalAmount,
		order.DeliveryAddress.Street, order.DeliveryAddress.City, order.DeliveryAddress.State,
		order.DeliveryAddress.ZipCode, order.Notes, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			order.ID, item.MenuItemID, item.Name, item.Price, item.Quantity).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_status_events (order_id, from_status, to_status, changed_by, created_at)
		VALUES ($1, '', $2, $3, $4)`,
		order.ID, order.Status, order.UserID, order.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

const orderColumns = `id, user_id, restaurant_id, status, total_amount, street, city, state, zip_code, notes, created_at, updated_at`

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.itemsFor(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return r.findAll(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
}

func (r *PostgresRepository) FindByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.findAll(ctx, `SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *PostgresRepository) FindByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return r.findAll(ctx, `SELECT `+orderColumns+` FROM orders WHERE restaurant_id = $1 ORDER BY created_at DESC`, restaurantID)
}

func (r *PostgresRepository) FindByStatus(ctx context.Context, status domain.Status) ([]domain.Order, error) {
	return r.findAll(ctx, `SELECT `+orderColumns+` FROM orders WHERE status = $1 ORDER BY created_at DESC`, string(status))
}

// FindRecent returns orders placed within the last 24 hours, newest
// first.
func (r *PostgresRepository) FindRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	return r.findAll(ctx, `SELECT `+orderColumns+` FROM orders WHERE created_at >= now() - interval '24 hours' ORDER BY created_at DESC LIMIT $1`, limit)
}

// UpdateStatus flips the order status with an optimistic guard on the
// previous value and records the transition in the history table.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, from, to domain.Status, changedBy string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE orders SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
		to, id, from)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return service.ErrStatusConflict
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_status_events (order_id, from_status, to_status, changed_by)
		VALUES ($1, $2, $3, $4)`,
		id, from, to, changedBy)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) StatusHistory(ctx context.Context, id string) ([]domain.StatusEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, from_status, to_status, changed_by, created_at
		FROM order_status_events WHERE order_id = $1 ORDER BY created_at ASC, id ASC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []domain.StatusEvent{}
	for rows.Next() {
		var e domain.StatusEvent
		if err := rows.Scan(&e.ID, &e.OrderID, &e.FromStatus, &e.ToStatus, &e.ChangedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *PostgresRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &domain.Stats{CountsByStatus: map[domain.Status]int64{}}
	for rows.Next() {
		var status domain.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.CountsByStatus[status] = count
		stats.TotalOrders += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = $1`,
		domain.StatusDelivered).Scan(&stats.DeliveredRevenue)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *PostgresRepository) findAll(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.itemsFor(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) itemsFor(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, menu_item_id, name, price, quantity
		FROM order_items WHERE order_id = $1 ORDER BY id ASC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.UserID, &order.RestaurantID, &order.Status, &order.TotalAmount,
		&order.DeliveryAddress.Street, &order.DeliveryAddress.City, &order.DeliveryAddress.State,
		&order.DeliveryAddress.ZipCode, &order.Notes, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
