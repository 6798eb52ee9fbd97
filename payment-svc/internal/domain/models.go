package domain

import "time"

type PaymentStatus string

const (
	PaymentCompleted         PaymentStatus = "COMPLETED"
	PaymentFailed            PaymentStatus = "FAILED"
	PaymentPartiallyRefunded PaymentStatus = "PARTIALLY_REFUNDED"
	PaymentRefunded          PaymentStatus = "REFUNDED"
)

type Payment struct {
	ID             int64         `json:"id"`
	TransactionID  string        `json:"transaction_id"`
	OrderID        string        `json:"order_id"`
	UserID         string        `json:"user_id"`
	Amount         float64       `json:"amount"`
	RefundedAmount float64       `json:"refunded_amount"`
	Currency       string        `json:"currency"`
	Method         string        `json:"method"`
	Status         PaymentStatus `json:"status"`
	FailureReason  string        `json:"failure_reason,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type Refund struct {
	ID        int64     `json:"id"`
	PaymentID int64     `json:"payment_id"`
	Amount    float64   `json:"amount"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PaymentMethod struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	MaskedCard  string    `json:"masked_card,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	ExpiryMonth int       `json:"expiry_month,omitempty"`
	ExpiryYear  int       `json:"expiry_year,omitempty"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProcessPaymentRequest struct {
	OrderID    string  `json:"order_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Currency   string  `json:"currency"`
	Method     string  `json:"method" validate:"required,oneof=CARD CASH WALLET"`
	CardNumber string  `json:"card_number" validate:"omitempty,credit_card"`
}

type RefundRequest struct {
	// Amount of zero means refund whatever is still refundable.
	Amount float64 `json:"amount" validate:"gte=0"`
	Reason string  `json:"reason"`
}

type PaymentMethodRequest struct {
	Type        string `json:"type" validate:"required,oneof=CARD WALLET"`
	CardNumber  string `json:"card_number" validate:"required_if=Type CARD,omitempty,credit_card"`
	Brand       string `json:"brand"`
	ExpiryMonth int    `json:"expiry_month" validate:"omitempty,min=1,max=12"`
	ExpiryYear  int    `json:"expiry_year" validate:"omitempty,min=2024,max=2100"`
	IsDefault   bool   `json:"is_default"`
}

// PaymentEvent is published on the order_events topic alongside the
// order service's own events.
type PaymentEvent struct {
	Type          string    `json:"type"`
	OrderID       string    `json:"order_id"`
	UserID        string    `json:"user_id,omitempty"`
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
}
