package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/veloracommerce/velora-backend/pkg/db/models"
)

// Repository exposes cart line persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByUser returns the user's cart lines in insertion order.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var rows []models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).
		Error
	return rows, err
}

// Find loads the cart line for the (user, product) pair.
func (r *Repository) Find(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).
		Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Insert creates the cart line unless one already exists for the pair. The
// unique constraint absorbs concurrent inserts; the return value reports
// whether this call created the row.
func (r *Repository) Insert(ctx context.Context, item *models.CartItem) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(item)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// UpdateQuantity overwrites the requested quantity for an existing line.
func (r *Repository) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	return result.RowsAffected, result.Error
}

// DeleteStaleWithTx removes cart lines untouched since the cutoff.
func (r *Repository) DeleteStaleWithTx(tx *gorm.DB, cutoff time.Time) (int64, error) {
	result := tx.
		Where("updated_at < ?", cutoff).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// DeleteOrphanedWithTx removes cart lines whose product no longer exists.
// It runs inside the caller's transaction so the cron worker can batch it
// with other maintenance work.
func (r *Repository) DeleteOrphanedWithTx(tx *gorm.DB) (int64, error) {
	result := tx.
		Where("product_id NOT IN (?)", tx.Session(&gorm.Session{NewDB: true}).Model(&models.Product{}).Select("id")).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// Delete removes the cart line for the pair.
func (r *Repository) Delete(ctx context.Context, userID, productID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
