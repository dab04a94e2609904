package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node in the self-referential category tree. Top-level
// categories have a nil parent.
type Category struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Title            string     `gorm:"column:title;not null"`
	Slug             string     `gorm:"column:slug;not null;uniqueIndex:categories_slug_key"`
	Description      string     `gorm:"column:description"`
	ParentCategoryID *uuid.UUID `gorm:"column:parent_category_id;type:uuid;index:categories_parent_idx"`
	Subcategories    []Category `gorm:"foreignKey:ParentCategoryID"`
	Products         []Product  `gorm:"many2many:category_products"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
