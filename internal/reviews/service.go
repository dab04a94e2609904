package reviews

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloracommerce/velora-backend/internal/catalog"
	pkgdb "github.com/veloracommerce/velora-backend/pkg/db"
	"github.com/veloracommerce/velora-backend/pkg/db/models"
	pkgerrors "github.com/veloracommerce/velora-backend/pkg/errors"
)

const uniqueReviewConstraint = "reviews_product_user_key"

// ServiceParams groups dependencies for the review service.
type ServiceParams struct {
	ReviewRepo  *Repository
	CatalogRepo *catalog.Repository
}

// Service exposes review creation and listing.
type Service interface {
	Create(ctx context.Context, input CreateReviewInput) (*ReviewDTO, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]ReviewDTO, error)
}

type service struct {
	reviewRepo  *Repository
	catalogRepo *catalog.Repository
}

// NewService builds a review service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.ReviewRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "review repo is required")
	}
	if params.CatalogRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	return &service{
		reviewRepo:  params.ReviewRepo,
		catalogRepo: params.CatalogRepo,
	}, nil
}

// Create inserts one review per (product, user) pair. The storage constraint
// is the authority on duplicates, so a concurrent second create converts to
// the same outcome as a sequential one.
func (s *service) Create(ctx context.Context, input CreateReviewInput) (*ReviewDTO, error) {
	if input.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if input.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	if _, err := s.catalogRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Product not found!")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	review := &models.Review{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Review:    input.Review,
		Title:     input.Title,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if pkgdb.IsUniqueViolation(err, uniqueReviewConstraint) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "Review already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert review")
	}
	return NewReviewDTO(review), nil
}

// ListByProduct returns the product's reviews, newest first.
func (s *service) ListByProduct(ctx context.Context, productID uuid.UUID) ([]ReviewDTO, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if _, err := s.catalogRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Product not found!")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	rows, err := s.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reviews")
	}
	dtos := make([]ReviewDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *NewReviewDTO(&rows[i]))
	}
	return dtos, nil
}
