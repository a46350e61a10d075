package service

import (
	"github.com/dukamart/storefront/internal/model"
	"github.com/shopspring/decimal"
)

// InitiatePaymentResponse carries the pending transaction reference plus the
// raw provider acceptance payload the client needs to prompt the payer.
type InitiatePaymentResponse struct {
	TransactionID int64
	ProviderRef   string
	Acceptance    any
}

type AuthResult struct {
	User  *model.User
	Token string
}

type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

type CartView struct {
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type ReviewListView struct {
	Items         []model.Review `json:"items"`
	AverageRating float64        `json:"average_rating"`
	ReviewCount   int64          `json:"review_count"`
}
