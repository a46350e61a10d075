package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Name        string          `gorm:"column:name;type:varchar(100);not null"`
	Description string          `gorm:"column:description;type:text"`
	Category    string          `gorm:"column:category;type:varchar(50);index:idx_category_subcategory"`
	Subcategory string          `gorm:"column:subcategory;type:varchar(50);index:idx_category_subcategory"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null"`
	Image       string          `gorm:"column:image;type:varchar(500)"`
	Stock       int             `gorm:"column:stock;not null;default:0"`
	Rating      float64         `gorm:"column:rating;default:0"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (Product) TableName() string {
	return "products"
}

func (p Product) InStock() bool {
	return p.Stock > 0
}
