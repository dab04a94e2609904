package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/veloracommerce/velora-backend/pkg/db/models"
)

func TestPriceProjection(t *testing.T) {
	if got := PriceFromCents(1999); !got.Equal(decimal.RequireFromString("19.99")) {
		t.Fatalf("expected 19.99, got %s", got)
	}
	if got := DiscountedPrice(1000, 25); !got.Equal(decimal.RequireFromString("7.5")) {
		t.Fatalf("expected 7.5, got %s", got)
	}
	if got := DiscountedPrice(1000, 0); !got.Equal(decimal.RequireFromString("10")) {
		t.Fatalf("expected undiscounted price, got %s", got)
	}
	if got := DiscountedPrice(1000, 100); !got.IsZero() {
		t.Fatalf("expected zero at full discount, got %s", got)
	}
}

func TestAverageRating(t *testing.T) {
	if got := AverageRating(nil); got != nil {
		t.Fatalf("expected nil for no reviews, got %s", got)
	}
	reviews := []models.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}
	got := AverageRating(reviews)
	if got == nil {
		t.Fatalf("expected average")
	}
	want := decimal.NewFromInt(13).Div(decimal.NewFromInt(3))
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestProductProjections(t *testing.T) {
	product := &models.Product{
		ID:              uuid.New(),
		Title:           "Desk Lamp",
		Slug:            "desk-lamp",
		Brand:           "Lumen",
		PriceCents:      2500,
		Quantity:        7,
		DiscountPercent: 20,
		Images: []models.ProductImage{
			{ImagePath: "images/front.jpg", IsPrimary: true},
			{ImagePath: "images/side.jpg"},
		},
		Reviews: []models.Review{{Rating: 5, Review: "bright", Title: "good"}},
	}

	dto := NewProductDTO(product)
	if dto.PrimaryImage == nil || *dto.PrimaryImage != "images/front.jpg" {
		t.Fatalf("unexpected primary image %v", dto.PrimaryImage)
	}
	if len(dto.Images) != 2 {
		t.Fatalf("expected 2 image paths, got %d", len(dto.Images))
	}
	if !dto.DiscountedPrice.Equal(decimal.RequireFromString("20")) {
		t.Fatalf("expected discounted price 20, got %s", dto.DiscountedPrice)
	}
	if len(dto.Reviews) != 1 || dto.Reviews[0].Rating != 5 {
		t.Fatalf("unexpected reviews %+v", dto.Reviews)
	}

	detail := NewProductDetailDTO(product)
	if detail.Rating == nil || !detail.Rating.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("unexpected rating %v", detail.Rating)
	}
	if len(detail.Reviews) != 1 || detail.Reviews[0].Rating != 5 {
		t.Fatalf("unexpected rating projection %+v", detail.Reviews)
	}

	noImages := &models.Product{ID: uuid.New(), PriceCents: 100}
	if got := NewCategoryProductDTO(noImages); got.PrimaryImage != nil || got.Rating != nil {
		t.Fatalf("expected nil image and rating for bare product")
	}
}

func TestCategoryProjection(t *testing.T) {
	parent := &models.Category{
		ID:    uuid.New(),
		Title: "Electronics",
		Slug:  "electronics",
		Subcategories: []models.Category{
			{ID: uuid.New(), Title: "Phones", Slug: "phones"},
		},
	}

	dto := NewCategoryDTO(parent)
	if dto.Title != "Electronics" {
		t.Fatalf("unexpected title %s", dto.Title)
	}
	if len(dto.Subcategories) != 1 || dto.Subcategories[0].Title != "Phones" {
		t.Fatalf("unexpected subcategories %+v", dto.Subcategories)
	}
}
