package wishlist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/veloracommerce/velora-backend/internal/catalog"
	"github.com/veloracommerce/velora-backend/pkg/db/models"
	pkgerrors "github.com/veloracommerce/velora-backend/pkg/errors"
)

func newTestEnv(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	dsn := "file:wishlist_" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = gdb.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
		&models.Review{},
		&models.WishlistItem{},
	)
	if err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	svc, err := NewService(ServiceParams{
		WishlistRepo: NewRepository(gdb),
		CatalogRepo:  catalog.NewRepository(gdb),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, gdb
}

func seedProduct(t *testing.T, gdb *gorm.DB) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:          uuid.New(),
		Title:       "Product " + uuid.NewString()[:8],
		Slug:        "product-" + uuid.NewString(),
		PriceCents:  2000,
		Quantity:    3,
		IsConfirmed: true,
	}
	if err := gdb.Create(product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func TestAddItemIsIdempotent(t *testing.T) {
	svc, gdb := newTestEnv(t)
	ctx := context.Background()
	userID := uuid.New()
	product := seedProduct(t, gdb)

	for i := 0; i < 3; i++ {
		if err := svc.AddItem(ctx, userID, product.ID); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	var count int64
	if err := gdb.Model(&models.WishlistItem{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single entry, got %d", count)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := newTestEnv(t)

	err := svc.AddItem(context.Background(), uuid.New(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRemoveItem(t *testing.T) {
	svc, gdb := newTestEnv(t)
	ctx := context.Background()
	userID := uuid.New()
	product := seedProduct(t, gdb)

	if err := svc.AddItem(ctx, userID, product.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.RemoveItem(ctx, userID, product.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	err := svc.RemoveItem(ctx, userID, product.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found on repeat removal, got %v", err)
	}
}

func TestGetWishlistReturnsProjections(t *testing.T) {
	svc, gdb := newTestEnv(t)
	ctx := context.Background()
	userID := uuid.New()

	first := seedProduct(t, gdb)
	second := seedProduct(t, gdb)
	image := &models.ProductImage{ID: uuid.New(), ProductID: first.ID, ImagePath: "images/one.jpg", IsPrimary: true}
	if err := gdb.Create(image).Error; err != nil {
		t.Fatalf("seed image: %v", err)
	}
	review := &models.Review{ID: uuid.New(), ProductID: first.ID, UserID: uuid.New(), Rating: 5, Review: "great", Title: "nice"}
	if err := gdb.Create(review).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}

	for _, productID := range []uuid.UUID{first.ID, second.ID} {
		if err := svc.AddItem(ctx, userID, productID); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	items, err := svc.GetWishlist(ctx, userID)
	if err != nil {
		t.Fatalf("get wishlist: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != first.ID {
		t.Fatalf("expected insertion order to be preserved")
	}
	if items[0].PrimaryImage == nil || *items[0].PrimaryImage != "images/one.jpg" {
		t.Fatalf("unexpected primary image %v", items[0].PrimaryImage)
	}
	if len(items[0].Reviews) != 1 || items[0].Reviews[0].Rating != 5 {
		t.Fatalf("unexpected reviews %+v", items[0].Reviews)
	}
}
