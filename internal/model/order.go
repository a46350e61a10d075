package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID          int64           `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	OrderNumber string          `gorm:"column:order_number;type:char(36);uniqueIndex;not null"`
	UserID      int64           `gorm:"column:user_id;index;not null"`
	Total       decimal.Decimal `gorm:"column:total;type:decimal(12,2);not null"`
	Status      OrderStatus     `gorm:"column:status;type:varchar(10);not null"`
	PaidAt      *time.Time      `gorm:"column:paid_at"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots name and price at checkout time so later catalog edits
// do not rewrite order history.
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	OrderID   int64           `gorm:"column:order_id;index;not null"`
	ProductID int64           `gorm:"column:product_id;not null"`
	Name      string          `gorm:"column:name;type:varchar(100);not null"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null"`
	Quantity  int             `gorm:"column:quantity;not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
