package reviews

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloracommerce/velora-backend/pkg/db/models"
)

// Repository exposes review persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reviews repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the review. The (product_id, user_id) unique constraint
// rejects a second review for the pair; callers translate that violation.
func (r *Repository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// ListByProduct returns the product's reviews, newest first.
func (r *Repository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	var rows []models.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&rows).
		Error
	return rows, err
}
