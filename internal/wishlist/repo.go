package wishlist

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/veloracommerce/velora-backend/pkg/db/models"
)

// Repository exposes wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddItem records the (user, product) pair. Duplicate adds are no-ops; the
// unique constraint absorbs concurrent calls.
func (r *Repository) AddItem(ctx context.Context, userID, productID uuid.UUID) error {
	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(item).
		Error
}

// RemoveItem deletes the pair and reports how many rows went away.
func (r *Repository) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{})
	return result.RowsAffected, result.Error
}

// ListProductIDs returns the user's wishlisted product ids in insertion order.
func (r *Repository) ListProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("product_id", &ids).
		Error
	return ids, err
}
