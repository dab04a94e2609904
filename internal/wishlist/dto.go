package wishlist

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/veloracommerce/velora-backend/internal/catalog"
	"github.com/veloracommerce/velora-backend/pkg/db/models"
)

// WishlistProductDTO is one saved product in the wishlist view.
type WishlistProductDTO struct {
	ID              uuid.UUID                  `json:"id"`
	Title           string                     `json:"title"`
	Brand           string                     `json:"brand"`
	Price           decimal.Decimal            `json:"price"`
	DiscountPercent int                        `json:"discount_percent"`
	PrimaryImage    *string                    `json:"primary_image"`
	Reviews         []catalog.ReviewSnippetDTO `json:"reviews"`
}

// NewWishlistProductDTO projects a product with its image and reviews.
func NewWishlistProductDTO(product *models.Product) WishlistProductDTO {
	reviews := make([]catalog.ReviewSnippetDTO, 0, len(product.Reviews))
	for _, review := range product.Reviews {
		reviews = append(reviews, catalog.ReviewSnippetDTO{
			Rating:    review.Rating,
			Review:    review.Review,
			Title:     review.Title,
			CreatedAt: review.CreatedAt,
		})
	}
	return WishlistProductDTO{
		ID:              product.ID,
		Title:           product.Title,
		Brand:           product.Brand,
		Price:           catalog.PriceFromCents(product.PriceCents),
		DiscountPercent: product.DiscountPercent,
		PrimaryImage:    catalog.PrimaryImagePath(product.Images),
		Reviews:         reviews,
	}
}
