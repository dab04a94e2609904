package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloracommerce/velora-backend/pkg/db/models"
	"github.com/veloracommerce/velora-backend/pkg/pagination"
)

const newArrivalsCount = 4

// Repository exposes catalog read paths over GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// withAssociations eager-loads images and reviews so read paths never trigger
// per-row queries. Images sort primary-first; reviews newest-first.
func withAssociations(qb *gorm.DB) *gorm.DB {
	return qb.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC")
		}).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		})
}

// NewArrivals returns the four newest confirmed, in-stock products.
func (r *Repository) NewArrivals(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := withAssociations(r.db.WithContext(ctx)).
		Where("is_confirmed = ?", true).
		Where("quantity > ?", 0).
		Order("created_at DESC").
		Limit(newArrivalsCount).
		Find(&rows).
		Error
	return rows, err
}

// FindVisibleByID loads a confirmed, in-stock product with its associations.
// Hidden and out-of-stock products behave as if they do not exist.
func (r *Repository) FindVisibleByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := withAssociations(r.db.WithContext(ctx)).
		Where("is_confirmed = ?", true).
		Where("quantity > ?", 0).
		First(&product, "id = ?", id).
		Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByID loads any product row regardless of visibility. Cart and wishlist
// writes resolve products through this path.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListByIDs loads products with their images for the given ids. Missing ids
// are silently skipped.
func (r *Repository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.Product
	err := withAssociations(r.db.WithContext(ctx)).
		Where("id IN ?", ids).
		Find(&rows).
		Error
	return rows, err
}

// ListTopLevelCategories returns root categories with their direct children.
func (r *Repository) ListTopLevelCategories(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).
		Where("parent_category_id IS NULL").
		Preload("Subcategories").
		Order("title ASC").
		Find(&rows).
		Error
	return rows, err
}

// FindCategoryByID loads a single category node.
func (r *Repository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// CategoryProductsQuery selects one page of a category's products.
type CategoryProductsQuery struct {
	// CategoryID scopes the listing to a category and its direct
	// subcategories. Nil selects the whole catalog.
	CategoryID *uuid.UUID
	SortBy     string
	Pagination pagination.Params
}

// ListCategoryProducts returns one sorted page of products plus the total row
// count. Category scoping covers the category itself and its direct children
// only; deeper descendants are not traversed.
func (r *Repository) ListCategoryProducts(ctx context.Context, query CategoryProductsQuery) ([]models.Product, int64, error) {
	qb := r.db.WithContext(ctx).Model(&models.Product{})

	if query.CategoryID != nil {
		membership := r.db.
			Table("category_products").
			Joins("JOIN categories ON categories.id = category_products.category_id").
			Where("categories.id = ? OR categories.parent_category_id = ?", *query.CategoryID, *query.CategoryID).
			Select("category_products.product_id")
		qb = qb.Where("products.id IN (?)", membership)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params := query.Pagination.Normalize()
	var rows []models.Product
	err := withAssociations(qb).
		Order(OrderClause(query.SortBy)).
		Offset(query.Pagination.Offset()).
		Limit(params.PerPage).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
