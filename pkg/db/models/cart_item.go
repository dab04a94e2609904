package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one cart line: the quantity a user wants of a product. The
// (user_id, product_id) unique constraint is what makes concurrent adds for
// the same pair collapse into a single line.
type CartItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:cart_items_user_id_idx;uniqueIndex:cart_items_user_product_key"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:cart_items_user_product_key"`
	Quantity  int       `gorm:"column:quantity;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
