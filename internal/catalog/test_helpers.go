package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/veloracommerce/velora-backend/pkg/db/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:catalog_" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = gdb.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
		&models.Category{},
		&models.Review{},
	)
	if err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return gdb
}

type productSpec struct {
	Title           string
	PriceCents      int
	Quantity        int
	DiscountPercent int
	IsConfirmed     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func mustCreateProduct(t *testing.T, tx *gorm.DB, spec productSpec) *models.Product {
	t.Helper()
	if spec.Title == "" {
		spec.Title = "Product " + uuid.NewString()[:8]
	}
	if spec.PriceCents == 0 {
		spec.PriceCents = 1000
	}
	product := &models.Product{
		ID:              uuid.New(),
		Title:           spec.Title,
		Slug:            "product-" + uuid.NewString(),
		PriceCents:      spec.PriceCents,
		Quantity:        spec.Quantity,
		DiscountPercent: spec.DiscountPercent,
		IsConfirmed:     spec.IsConfirmed,
		CreatedAt:       spec.CreatedAt,
		UpdatedAt:       spec.UpdatedAt,
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func mustCreateImage(t *testing.T, tx *gorm.DB, productID uuid.UUID, path string, primary bool) *models.ProductImage {
	t.Helper()
	image := &models.ProductImage{
		ID:        uuid.New(),
		ProductID: productID,
		ImagePath: path,
		IsPrimary: primary,
	}
	if err := tx.Create(image).Error; err != nil {
		t.Fatalf("create image: %v", err)
	}
	return image
}

func mustCreateReview(t *testing.T, tx *gorm.DB, productID, userID uuid.UUID, rating int) *models.Review {
	t.Helper()
	review := &models.Review{
		ID:        uuid.New(),
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Review:    "review body",
		Title:     "review title",
	}
	if err := tx.Create(review).Error; err != nil {
		t.Fatalf("create review: %v", err)
	}
	return review
}

func mustCreateCategory(t *testing.T, tx *gorm.DB, title string, parentID *uuid.UUID) *models.Category {
	t.Helper()
	category := &models.Category{
		ID:               uuid.New(),
		Title:            title,
		Slug:             "category-" + uuid.NewString(),
		ParentCategoryID: parentID,
	}
	if err := tx.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

func mustAttachCategory(t *testing.T, tx *gorm.DB, categoryID, productID uuid.UUID) {
	t.Helper()
	err := tx.Exec(
		"INSERT INTO category_products (category_id, product_id) VALUES (?, ?)",
		categoryID, productID,
	).Error
	if err != nil {
		t.Fatalf("attach category: %v", err)
	}
}
