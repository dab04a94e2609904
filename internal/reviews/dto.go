package reviews

import (
	"time"

	"github.com/google/uuid"

	"github.com/veloracommerce/velora-backend/pkg/db/models"
)

// ReviewDTO is the wire shape of a review.
type ReviewDTO struct {
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateReviewInput holds the validated payload to create a review.
type CreateReviewInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Review    string
	Title     string
}

// NewReviewDTO projects a persisted review.
func NewReviewDTO(review *models.Review) *ReviewDTO {
	return &ReviewDTO{
		UserID:    review.UserID,
		ProductID: review.ProductID,
		Rating:    review.Rating,
		Review:    review.Review,
		Title:     review.Title,
		CreatedAt: review.CreatedAt,
	}
}
