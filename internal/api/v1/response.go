package v1

import (
	"time"

	"github.com/dukamart/storefront/internal/model"
	"github.com/shopspring/decimal"
)

type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserView(usr *model.User) UserView {
	return UserView{ID: usr.ID, Name: usr.Name, Email: usr.Email}
}

type TransactionView struct {
	ID            int64           `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	ProviderRef   string          `json:"provider_ref"`
	Description   string          `json:"description,omitempty"`
	OrderID       *int64          `json:"order_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func newTransactionView(tx *model.Transaction) TransactionView {
	view := TransactionView{
		ID:            tx.ID,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		PaymentMethod: string(tx.PaymentMethod),
		Status:        string(tx.Status),
		ProviderRef:   tx.ProviderRef,
		OrderID:       tx.OrderID,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}

	if tx.ResultDescription != nil {
		view.Description = *tx.ResultDescription
	}

	return view
}

func newTransactionViews(txs []model.Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(txs))
	for i := range txs {
		views = append(views, newTransactionView(&txs[i]))
	}
	return views
}

type InitiatePaymentView struct {
	TransactionID int64  `json:"transaction_id"`
	ProviderRef   string `json:"provider_ref"`
	Acceptance    any    `json:"acceptance"`
}
