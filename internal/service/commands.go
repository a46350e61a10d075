package service

import (
	"github.com/dukamart/storefront/internal/model"
	"github.com/shopspring/decimal"
)

type InitiatePaymentCommand struct {
	Method  model.PaymentMethod
	Phone   string
	Amount  decimal.Decimal
	UserID  int64
	OrderID *int64
}

// ReconcileCommand is the normalized outcome every provider callback is
// parsed into before it touches the transaction store.
type ReconcileCommand struct {
	Method        model.PaymentMethod
	CorrelationID string
	Success       bool
	Description   string
	SecondaryID   *string
}

type CreatePaypalOrderCommand struct {
	Amount decimal.Decimal
	UserID int64
}

type CapturePaypalCommand struct {
	ProviderOrderID string
	UserID          int64
	OrderID         *int64
}

type SignupCommand struct {
	Name     string
	Email    string
	Password string
}

type LoginCommand struct {
	Email    string
	Password string
}

type AddCartItemCommand struct {
	UserID    int64
	ProductID int64
	Quantity  int
}

type UpdateCartItemCommand struct {
	UserID    int64
	ProductID int64
	Quantity  int
}

type SubmitReviewCommand struct {
	UserID    int64
	ProductID int64
	Rating    int
	Comment   string
}

type SaveProductCommand struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Subcategory string
	Price       decimal.Decimal
	Image       string
	Stock       int
}

type MarkOrderPaidCommand struct {
	OrderID       int64 `json:"order_id"`
	TransactionID int64 `json:"transaction_id"`
}

// PaymentSettledEvent is published when a transaction reaches a successful
// terminal state with an order attached.
type PaymentSettledEvent struct {
	TransactionID int64  `json:"transaction_id"`
	OrderID       int64  `json:"order_id"`
	UserID        int64  `json:"user_id"`
	Method        string `json:"method"`
}
