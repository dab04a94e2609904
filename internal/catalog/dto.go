package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/veloracommerce/velora-backend/pkg/db/models"
	"github.com/veloracommerce/velora-backend/pkg/pagination"
)

// ProductDTO is the full listing payload used by the new-arrivals feed.
type ProductDTO struct {
	ID               uuid.UUID          `json:"id"`
	Title            string             `json:"title"`
	Slug             string             `json:"slug"`
	Description      string             `json:"description"`
	ShortDescription string             `json:"short_description"`
	Brand            string             `json:"brand"`
	Price            decimal.Decimal    `json:"price"`
	DiscountedPrice  decimal.Decimal    `json:"discounted_price"`
	Quantity         int                `json:"quantity"`
	DiscountPercent  int                `json:"discount_percent"`
	IsFeatured       bool               `json:"is_featured"`
	PrimaryImage     *string            `json:"primary_image"`
	Images           []string           `json:"images"`
	Reviews          []ReviewSnippetDTO `json:"reviews"`
}

// ProductDetailDTO is the single-product payload.
type ProductDetailDTO struct {
	ID               uuid.UUID        `json:"id"`
	Title            string           `json:"title"`
	Image            *string          `json:"image"`
	ShortDescription string           `json:"short_description"`
	Brand            string           `json:"brand"`
	Price            decimal.Decimal  `json:"price"`
	Rating           *decimal.Decimal `json:"rating"`
	DiscountedPrice  decimal.Decimal  `json:"discounted_price"`
	DiscountPercent  int              `json:"discount_percent"`
	IsFeatured       bool             `json:"is_featured"`
	Reviews          []RatingDTO      `json:"reviews"`
}

// CategoryProductDTO is the compact product payload for category pages.
type CategoryProductDTO struct {
	ID               uuid.UUID        `json:"id"`
	Title            string           `json:"title"`
	Slug             string           `json:"slug"`
	ShortDescription string           `json:"short_description"`
	Brand            string           `json:"brand"`
	Price            decimal.Decimal  `json:"price"`
	DiscountedPrice  decimal.Decimal  `json:"discounted_price"`
	DiscountPercent  int              `json:"discount_percent"`
	PrimaryImage     *string          `json:"primary_image"`
	Rating           *decimal.Decimal `json:"rating"`
}

// CategoryProductsPageDTO is one page of a category listing.
type CategoryProductsPageDTO struct {
	Products []CategoryProductDTO `json:"products"`
	Meta     pagination.Meta      `json:"meta"`
}

// ReviewSnippetDTO is the review projection embedded in product payloads.
type ReviewSnippetDTO struct {
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingDTO carries only the score, for payloads that aggregate ratings.
type RatingDTO struct {
	Rating int `json:"rating"`
}

// CategoryDTO is a category node with its direct children.
type CategoryDTO struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	Subcategories []CategoryDTO `json:"subcategories"`
}

// PriceFromCents converts the stored minor-unit price to a decimal amount.
func PriceFromCents(cents int) decimal.Decimal {
	return decimal.NewFromInt(int64(cents)).Div(decimal.NewFromInt(100))
}

// DiscountedPrice computes price reduced by the discount percent. Never stored.
func DiscountedPrice(cents, discountPercent int) decimal.Decimal {
	return PriceFromCents(cents).
		Mul(decimal.NewFromInt(int64(100 - discountPercent))).
		Div(decimal.NewFromInt(100))
}

// AverageRating returns the mean review score, or nil when there are none.
func AverageRating(reviews []models.Review) *decimal.Decimal {
	if len(reviews) == 0 {
		return nil
	}
	sum := int64(0)
	for _, review := range reviews {
		sum += int64(review.Rating)
	}
	avg := decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(reviews))))
	return &avg
}

// PrimaryImagePath returns the path of the image flagged primary, if any.
func PrimaryImagePath(images []models.ProductImage) *string {
	for _, image := range images {
		if image.IsPrimary {
			path := image.ImagePath
			return &path
		}
	}
	return nil
}

// NewProductDTO projects a product with its images and reviews.
func NewProductDTO(product *models.Product) ProductDTO {
	images := make([]string, 0, len(product.Images))
	for _, image := range product.Images {
		images = append(images, image.ImagePath)
	}
	reviews := make([]ReviewSnippetDTO, 0, len(product.Reviews))
	for _, review := range product.Reviews {
		reviews = append(reviews, ReviewSnippetDTO{
			Rating:    review.Rating,
			Review:    review.Review,
			Title:     review.Title,
			CreatedAt: review.CreatedAt,
		})
	}

	return ProductDTO{
		ID:               product.ID,
		Title:            product.Title,
		Slug:             product.Slug,
		Description:      product.Description,
		ShortDescription: product.ShortDescription,
		Brand:            product.Brand,
		Price:            PriceFromCents(product.PriceCents),
		DiscountedPrice:  DiscountedPrice(product.PriceCents, product.DiscountPercent),
		Quantity:         product.Quantity,
		DiscountPercent:  product.DiscountPercent,
		IsFeatured:       product.IsFeatured,
		PrimaryImage:     PrimaryImagePath(product.Images),
		Images:           images,
		Reviews:          reviews,
	}
}

// NewProductDetailDTO projects the single-product view with its rating summary.
func NewProductDetailDTO(product *models.Product) *ProductDetailDTO {
	ratings := make([]RatingDTO, 0, len(product.Reviews))
	for _, review := range product.Reviews {
		ratings = append(ratings, RatingDTO{Rating: review.Rating})
	}

	return &ProductDetailDTO{
		ID:               product.ID,
		Title:            product.Title,
		Image:            PrimaryImagePath(product.Images),
		ShortDescription: product.ShortDescription,
		Brand:            product.Brand,
		Price:            PriceFromCents(product.PriceCents),
		Rating:           AverageRating(product.Reviews),
		DiscountedPrice:  DiscountedPrice(product.PriceCents, product.DiscountPercent),
		DiscountPercent:  product.DiscountPercent,
		IsFeatured:       product.IsFeatured,
		Reviews:          ratings,
	}
}

// NewCategoryProductDTO projects a product row for category pages.
func NewCategoryProductDTO(product *models.Product) CategoryProductDTO {
	return CategoryProductDTO{
		ID:               product.ID,
		Title:            product.Title,
		Slug:             product.Slug,
		ShortDescription: product.ShortDescription,
		Brand:            product.Brand,
		Price:            PriceFromCents(product.PriceCents),
		DiscountedPrice:  DiscountedPrice(product.PriceCents, product.DiscountPercent),
		DiscountPercent:  product.DiscountPercent,
		PrimaryImage:     PrimaryImagePath(product.Images),
		Rating:           AverageRating(product.Reviews),
	}
}

// NewCategoryDTO projects a category and its preloaded direct children.
func NewCategoryDTO(category *models.Category) CategoryDTO {
	subcategories := make([]CategoryDTO, 0, len(category.Subcategories))
	for i := range category.Subcategories {
		subcategories = append(subcategories, NewCategoryDTO(&category.Subcategories[i]))
	}
	return CategoryDTO{
		ID:            category.ID,
		Title:         category.Title,
		Slug:          category.Slug,
		Description:   category.Description,
		Subcategories: subcategories,
	}
}
