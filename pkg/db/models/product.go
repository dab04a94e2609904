package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog listing. Price is stored in minor units and
// only ever exposed as a decimal; the discounted price is computed on read.
type Product struct {
	ID               uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Title            string         `gorm:"column:title;not null"`
	Slug             string         `gorm:"column:slug;not null;uniqueIndex:products_slug_key"`
	Description      string         `gorm:"column:description"`
	ShortDescription string         `gorm:"column:short_description"`
	Brand            string         `gorm:"column:brand"`
	PriceCents       int            `gorm:"column:price_cents;not null"`
	Quantity         int            `gorm:"column:quantity;not null;default:0"`
	DiscountPercent  int            `gorm:"column:discount_percent;not null;default:0"`
	IsConfirmed      bool           `gorm:"column:is_confirmed;not null;default:false"`
	IsFeatured       bool           `gorm:"column:is_featured;not null;default:false"`
	Images           []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews          []Review       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Categories       []Category     `gorm:"many2many:category_products"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
