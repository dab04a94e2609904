package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/veloracommerce/velora-backend/pkg/errors"
	"github.com/veloracommerce/velora-backend/pkg/pagination"
)

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Repo *Repository
}

// Service exposes the public catalog read operations.
type Service interface {
	NewArrivals(ctx context.Context) ([]ProductDTO, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductDetailDTO, error)
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
	ListCategoryProducts(ctx context.Context, categoryID uuid.UUID, sortBy string, page pagination.Params) (*CategoryProductsPageDTO, error)
}

type service struct {
	repo *Repository
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// NewArrivals returns the newest in-stock products for the storefront feed.
func (s *service) NewArrivals(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.NewArrivals(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list new arrivals")
	}
	dtos := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, NewProductDTO(&rows[i]))
	}
	return dtos, nil
}

// GetProduct returns the detail view of a visible product.
func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductDetailDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	product, err := s.repo.FindVisibleByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return NewProductDetailDTO(product), nil
}

// ListCategories returns all top-level categories with their direct children.
func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	rows, err := s.repo.ListTopLevelCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	dtos := make([]CategoryDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, NewCategoryDTO(&rows[i]))
	}
	return dtos, nil
}

// ListCategoryProducts returns one sorted page of the category's products.
func (s *service) ListCategoryProducts(ctx context.Context, categoryID uuid.UUID, sortBy string, page pagination.Params) (*CategoryProductsPageDTO, error) {
	if categoryID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category id is required")
	}
	if _, err := s.repo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}

	rows, total, err := s.repo.ListCategoryProducts(ctx, CategoryProductsQuery{
		CategoryID: &categoryID,
		SortBy:     sortBy,
		Pagination: page,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list category products")
	}

	dtos := make([]CategoryProductDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, NewCategoryProductDTO(&rows[i]))
	}
	return &CategoryProductsPageDTO{
		Products: dtos,
		Meta:     pagination.NewMeta(page, total),
	}, nil
}
