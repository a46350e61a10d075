package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodMpesa  PaymentMethod = "mpesa"
	PaymentMethodAirtel PaymentMethod = "airtel"
	PaymentMethodPaypal PaymentMethod = "paypal"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodMpesa, PaymentMethodAirtel, PaymentMethodPaypal:
		return true
	}
	return false
}

// MobileMoney reports whether the method needs a payer MSISDN.
func (m PaymentMethod) MobileMoney() bool {
	return m == PaymentMethodMpesa || m == PaymentMethodAirtel
}

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

func (s TransactionStatus) Terminal() bool {
	return s == TransactionStatusSuccess || s == TransactionStatusFailed
}

// Transaction records one payment attempt a provider has acknowledged.
// ProviderRef carries the provider's correlation ID and is unique per payment
// method so a later callback resolves to exactly one row.
type Transaction struct {
	ID                   int64             `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	UserID               int64             `gorm:"column:user_id;not null;index"`
	OrderID              *int64            `gorm:"column:order_id"`
	Amount               decimal.Decimal   `gorm:"column:amount;type:decimal(12,2);not null"`
	Currency             string            `gorm:"column:currency;type:char(3);not null"`
	PhoneNumber          *string           `gorm:"column:phone_number;type:varchar(15)"`
	PaymentMethod        PaymentMethod     `gorm:"column:payment_method;type:varchar(10);index:idx_method_provider_ref,unique"`
	Status               TransactionStatus `gorm:"column:status;type:varchar(10);not null"`
	ProviderRef          string            `gorm:"column:provider_ref;type:varchar(64);index:idx_method_provider_ref,unique"`
	ProviderSecondaryRef *string           `gorm:"column:provider_secondary_ref;type:varchar(64)"`
	ResultDescription    *string           `gorm:"column:result_description;type:text"`
	CreatedAt            time.Time         `gorm:"column:created_at"`
	UpdatedAt            time.Time         `gorm:"column:updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
