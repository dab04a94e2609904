package models

import (
	"time"

	"github.com/google/uuid"
)

// Review holds a user's rating of a product. One review per (product, user)
// pair, enforced by the unique constraint.
type Review struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;index:reviews_product_id_idx;uniqueIndex:reviews_product_user_key"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:reviews_product_user_key"`
	Rating    int       `gorm:"column:rating;not null"`
	Review    string    `gorm:"column:review;not null"`
	Title     string    `gorm:"column:title;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
