package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloracommerce/velora-backend/pkg/pagination"
)

func TestNewArrivalsFiltersAndOrders(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	hidden := mustCreateProduct(t, gdb, productSpec{Quantity: 5, IsConfirmed: false, CreatedAt: base.Add(10 * time.Hour)})
	outOfStock := mustCreateProduct(t, gdb, productSpec{Quantity: 0, IsConfirmed: true, CreatedAt: base.Add(9 * time.Hour)})

	var visible []uuid.UUID
	for i := 0; i < 5; i++ {
		p := mustCreateProduct(t, gdb, productSpec{Quantity: 3, IsConfirmed: true, CreatedAt: base.Add(time.Duration(i) * time.Hour)})
		visible = append(visible, p.ID)
	}

	rows, err := repo.NewArrivals(ctx)
	if err != nil {
		t.Fatalf("new arrivals: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 products, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].CreatedAt.After(rows[i-1].CreatedAt) {
			t.Fatalf("expected newest-first ordering")
		}
	}
	for _, row := range rows {
		if row.ID == hidden.ID || row.ID == outOfStock.ID {
			t.Fatalf("unlistable product %s leaked into new arrivals", row.ID)
		}
	}
	// The oldest of the five visible products misses the cut.
	for _, row := range rows {
		if row.ID == visible[0] {
			t.Fatalf("expected oldest product to be excluded")
		}
	}
}

func TestFindVisibleByIDLoadsAssociations(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	product := mustCreateProduct(t, gdb, productSpec{Quantity: 2, IsConfirmed: true})
	mustCreateImage(t, gdb, product.ID, "images/side.jpg", false)
	mustCreateImage(t, gdb, product.ID, "images/front.jpg", true)
	mustCreateReview(t, gdb, product.ID, uuid.New(), 4)

	found, err := repo.FindVisibleByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("find visible: %v", err)
	}
	if len(found.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(found.Images))
	}
	if !found.Images[0].IsPrimary {
		t.Fatalf("expected primary image first")
	}
	if len(found.Reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(found.Reviews))
	}
}

func TestFindVisibleByIDHidesUnlistable(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	hidden := mustCreateProduct(t, gdb, productSpec{Quantity: 5, IsConfirmed: false})
	outOfStock := mustCreateProduct(t, gdb, productSpec{Quantity: 0, IsConfirmed: true})

	for _, id := range []uuid.UUID{hidden.ID, outOfStock.ID, uuid.New()} {
		if _, err := repo.FindVisibleByID(ctx, id); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Fatalf("expected record not found for %s, got %v", id, err)
		}
	}

	// The unrestricted lookup still resolves the hidden row.
	if _, err := repo.FindByID(ctx, hidden.ID); err != nil {
		t.Fatalf("find by id: %v", err)
	}
}

func TestListTopLevelCategories(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	parent := mustCreateCategory(t, gdb, "Electronics", nil)
	mustCreateCategory(t, gdb, "Phones", &parent.ID)
	mustCreateCategory(t, gdb, "Laptops", &parent.ID)
	mustCreateCategory(t, gdb, "Apparel", nil)

	rows, err := repo.ListTopLevelCategories(ctx)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 top-level categories, got %d", len(rows))
	}
	for _, row := range rows {
		if row.ID == parent.ID && len(row.Subcategories) != 2 {
			t.Fatalf("expected 2 subcategories, got %d", len(row.Subcategories))
		}
	}
}

func TestListCategoryProductsScopesDirectChildrenOnly(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	parent := mustCreateCategory(t, gdb, "Electronics", nil)
	child := mustCreateCategory(t, gdb, "Phones", &parent.ID)
	grandchild := mustCreateCategory(t, gdb, "Smartphones", &child.ID)

	inParent := mustCreateProduct(t, gdb, productSpec{Quantity: 1, IsConfirmed: true})
	inChild := mustCreateProduct(t, gdb, productSpec{Quantity: 1, IsConfirmed: true})
	inGrandchild := mustCreateProduct(t, gdb, productSpec{Quantity: 1, IsConfirmed: true})
	mustAttachCategory(t, gdb, parent.ID, inParent.ID)
	mustAttachCategory(t, gdb, child.ID, inChild.ID)
	mustAttachCategory(t, gdb, grandchild.ID, inGrandchild.ID)

	rows, total, err := repo.ListCategoryProducts(ctx, CategoryProductsQuery{CategoryID: &parent.ID})
	if err != nil {
		t.Fatalf("list category products: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}
	seen := map[uuid.UUID]bool{}
	for _, row := range rows {
		seen[row.ID] = true
	}
	if !seen[inParent.ID] || !seen[inChild.ID] {
		t.Fatalf("expected parent and direct-child products, got %v", seen)
	}
	if seen[inGrandchild.ID] {
		t.Fatalf("grandchild products must not be traversed")
	}
}

func TestListCategoryProductsSortsByDiscountedPrice(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	category := mustCreateCategory(t, gdb, "Deals", nil)
	// 1000 at 50% -> 500 effective; 800 at 0% -> 800; 600 at 10% -> 540.
	specs := []productSpec{
		{PriceCents: 1000, DiscountPercent: 50, Quantity: 1, IsConfirmed: true},
		{PriceCents: 800, DiscountPercent: 0, Quantity: 1, IsConfirmed: true},
		{PriceCents: 600, DiscountPercent: 10, Quantity: 1, IsConfirmed: true},
	}
	for _, spec := range specs {
		p := mustCreateProduct(t, gdb, spec)
		mustAttachCategory(t, gdb, category.ID, p.ID)
	}

	rows, _, err := repo.ListCategoryProducts(ctx, CategoryProductsQuery{
		CategoryID: &category.ID,
		SortBy:     SortPriceAsc,
	})
	if err != nil {
		t.Fatalf("list category products: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 products, got %d", len(rows))
	}
	previous := int64(-1)
	for _, row := range rows {
		effective := int64(row.PriceCents) - int64(row.PriceCents)*int64(row.DiscountPercent)/100
		if effective < previous {
			t.Fatalf("expected non-decreasing discounted prices")
		}
		previous = effective
	}
}

func TestListCategoryProductsPaginates(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	category := mustCreateCategory(t, gdb, "Bulk", nil)
	for i := 0; i < 15; i++ {
		p := mustCreateProduct(t, gdb, productSpec{Quantity: 1, IsConfirmed: true, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		mustAttachCategory(t, gdb, category.ID, p.ID)
	}

	first, total, err := repo.ListCategoryProducts(ctx, CategoryProductsQuery{
		CategoryID: &category.ID,
		Pagination: pagination.Params{Page: 1},
	})
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if total != 15 {
		t.Fatalf("expected total 15, got %d", total)
	}
	if len(first) != pagination.DefaultPerPage {
		t.Fatalf("expected %d rows, got %d", pagination.DefaultPerPage, len(first))
	}

	second, _, err := repo.ListCategoryProducts(ctx, CategoryProductsQuery{
		CategoryID: &category.ID,
		Pagination: pagination.Params{Page: 2},
	})
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if len(second) != 3 {
		t.Fatalf("expected 3 rows on second page, got %d", len(second))
	}
}

func TestListCategoryProductsWithoutCategorySelectsAll(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	mustCreateProduct(t, gdb, productSpec{Quantity: 1, IsConfirmed: true})
	mustCreateProduct(t, gdb, productSpec{Quantity: 0, IsConfirmed: false})

	rows, total, err := repo.ListCategoryProducts(ctx, CategoryProductsQuery{})
	if err != nil {
		t.Fatalf("list all products: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("expected all products, got total=%d rows=%d", total, len(rows))
	}
}
