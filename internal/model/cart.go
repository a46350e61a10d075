package model

import "time"

// CartItem is one product line in a user's cart. A user holds at most one row
// per product; adding the same product again bumps the quantity.
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	UserID    int64     `gorm:"column:user_id;index:idx_user_product,unique;not null"`
	ProductID int64     `gorm:"column:product_id;index:idx_user_product,unique;not null"`
	Quantity  int       `gorm:"column:quantity;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Product Product `gorm:"foreignKey:ProductID"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
