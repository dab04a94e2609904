package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/veloracommerce/velora-backend/internal/catalog"
	"github.com/veloracommerce/velora-backend/pkg/db/models"
)

// CartItemDTO is one line of the cart view. Quantity is the amount the user
// asked for; Stock is the product's live availability. The two are distinct
// fields on purpose.
type CartItemDTO struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	Brand           string          `json:"brand"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent int             `json:"discount_percent"`
	PrimaryImage    *string         `json:"primary_image"`
	Quantity        int             `json:"quantity"`
	Stock           int             `json:"stock"`
}

// CartLineDTO is the raw cart line returned by write operations.
type CartLineDTO struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCartItemDTO overlays a requested quantity onto the product projection.
func NewCartItemDTO(product *models.Product, requestedQty int) CartItemDTO {
	return CartItemDTO{
		ID:              product.ID,
		Title:           product.Title,
		Slug:            product.Slug,
		Brand:           product.Brand,
		Price:           catalog.PriceFromCents(product.PriceCents),
		DiscountPercent: product.DiscountPercent,
		PrimaryImage:    catalog.PrimaryImagePath(product.Images),
		Quantity:        requestedQty,
		Stock:           product.Quantity,
	}
}

// NewCartLineDTO projects a persisted cart line.
func NewCartLineDTO(item *models.CartItem) *CartLineDTO {
	return &CartLineDTO{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
