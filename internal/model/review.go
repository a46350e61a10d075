package model

import "time"

// Review is a user's rating of a product, at most one row per (product, user).
// Resubmitting replaces the earlier rating and comment.
type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	ProductID int64     `gorm:"column:product_id;index:idx_product_reviewer,unique;not null"`
	UserID    int64     `gorm:"column:user_id;index:idx_product_reviewer,unique;not null"`
	Rating    int       `gorm:"column:rating;not null"`
	Comment   string    `gorm:"column:comment;type:varchar(1000)"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
