package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductImage is one image attached to a product. At most one image per
// product carries the primary flag; it is the canonical display image.
type ProductImage struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;index:product_images_product_id_idx"`
	ImagePath string    `gorm:"column:image_path;not null"`
	IsPrimary bool      `gorm:"column:is_primary;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
