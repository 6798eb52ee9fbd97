package domain

import "time"

type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	RestaurantID    string      `json:"restaurant_id"`
	Status          Status      `json:"status"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	DeliveryAddress Address     `json:"delivery_address"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID         int64   `json:"id"`
	OrderID    string  `json:"order_id"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type Address struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code" validate:"omitempty,zipcode"`
}

// StatusEvent is one row of an order's status history.
type StatusEvent struct {
	ID         int64     `json:"id"`
	OrderID    string    `json:"order_id"`
	FromStatus Status    `json:"from_status,omitempty"`
	ToStatus   Status    `json:"to_status"`
	ChangedBy  string    `json:"changed_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateOrderRequest struct {
	RestaurantID    string             `json:"restaurant_id" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress Address            `json:"delivery_address" validate:"required"`
	Notes           string             `json:"notes"`
}

type OrderItemRequest struct {
	MenuItemID string  `json:"menu_item_id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	Quantity   int     `json:"quantity" validate:"required,gte=1"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required"`
}

// Stats aggregates order counts per status plus delivered revenue.
type Stats struct {
	TotalOrders      int64            `json:"total_orders"`
	CountsByStatus   map[Status]int64 `json:"counts_by_status"`
	DeliveredRevenue float64          `json:"delivered_revenue"`
}

// OrderEvent is the envelope published on the order_events topic. The
// payment service publishes its payment.* events on the same topic.
type OrderEvent struct {
	Type          string          `json:"type"`
	OrderID       string          `json:"order_id"`
	UserID        string          `json:"user_id,omitempty"`
	RestaurantID  string          `json:"restaurant_id,omitempty"`
	Status        Status          `json:"status,omitempty"`
	TotalAmount   float64         `json:"total_amount,omitempty"`
	Items         []OrderLineItem `json:"items,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}

type OrderLineItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}
