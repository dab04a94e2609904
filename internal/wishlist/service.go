package wishlist

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloracommerce/velora-backend/internal/catalog"
	"github.com/veloracommerce/velora-backend/pkg/db/models"
	pkgerrors "github.com/veloracommerce/velora-backend/pkg/errors"
)

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	WishlistRepo *Repository
	CatalogRepo  *catalog.Repository
}

// Service exposes business rules for wishlist management.
type Service interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]WishlistProductDTO, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
}

type service struct {
	wishlistRepo *Repository
	catalogRepo  *catalog.Repository
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.WishlistRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist repo is required")
	}
	if params.CatalogRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	return &service{
		wishlistRepo: params.WishlistRepo,
		catalogRepo:  params.CatalogRepo,
	}, nil
}

// GetWishlist returns the user's saved products with images and reviews.
func (s *service) GetWishlist(ctx context.Context, userID uuid.UUID) ([]WishlistProductDTO, error) {
	ids, err := s.wishlistRepo.ListProductIDs(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlist")
	}
	products, err := s.catalogRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist products")
	}
	byID := make(map[uuid.UUID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	dtos := make([]WishlistProductDTO, 0, len(ids))
	for _, id := range ids {
		product, ok := byID[id]
		if !ok {
			continue
		}
		dtos = append(dtos, NewWishlistProductDTO(product))
	}
	return dtos, nil
}

// AddItem ensures the product exists and saves it. Duplicate adds never error.
func (s *service) AddItem(ctx context.Context, userID, productID uuid.UUID) error {
	if productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if _, err := s.catalogRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Product not found!")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if err := s.wishlistRepo.AddItem(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add wishlist item")
	}
	return nil
}

// RemoveItem deletes the entry, failing when it never existed.
func (s *service) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	if productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	removed, err := s.wishlistRepo.RemoveItem(ctx, userID, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove wishlist item")
	}
	if removed == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found!")
	}
	return nil
}
