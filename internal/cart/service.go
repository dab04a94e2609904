package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloracommerce/velora-backend/internal/catalog"
	"github.com/veloracommerce/velora-backend/pkg/db/models"
	pkgerrors "github.com/veloracommerce/velora-backend/pkg/errors"
)

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	CartRepo    *Repository
	CatalogRepo *catalog.Repository
}

// Service reconciles per-user cart lines against live product stock.
type Service interface {
	GetCartItems(ctx context.Context, userID uuid.UUID) ([]CartItemDTO, error)
	AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartLineDTO, error)
	UpdateCartItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartLineDTO, error)
	DeleteCartItem(ctx context.Context, userID, productID uuid.UUID) (*CartLineDTO, error)
}

type service struct {
	cartRepo    *Repository
	catalogRepo *catalog.Repository
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.CartRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart repo is required")
	}
	if params.CatalogRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	return &service{
		cartRepo:    params.CartRepo,
		catalogRepo: params.CatalogRepo,
	}, nil
}

// GetCartItems returns the cart in insertion order, overlaying the requested
// quantity on top of each product while the live stock rides along separately.
func (s *service) GetCartItems(ctx context.Context, userID uuid.UUID) ([]CartItemDTO, error) {
	lines, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart lines")
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	products, err := s.catalogRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart products")
	}
	byID := make(map[uuid.UUID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	items := make([]CartItemDTO, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			// Product deleted since the line was added; the prune job
			// clears these out.
			continue
		}
		items = append(items, NewCartItemDTO(product, line.Quantity))
	}
	return items, nil
}

// AddToCart creates the cart line, or delegates to UpdateCartItem when one
// already exists for the pair. Delegation is what keeps a retried or
// concurrent add from ever producing a second line.
func (s *service) AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartLineDTO, error) {
	if quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if _, err := s.cartRepo.Find(ctx, userID, productID); err == nil {
		return s.UpdateCartItem(ctx, userID, productID, quantity)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart line")
	}

	if quantity > product.Quantity {
		return nil, pkgerrors.New(pkgerrors.CodeInsufficientStock, "Not enough stock!")
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	inserted, err := s.cartRepo.Insert(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert cart line")
	}
	if !inserted {
		// Lost the race to a concurrent add for the same pair; the
		// existing line wins and this call becomes an update.
		return s.UpdateCartItem(ctx, userID, productID, quantity)
	}
	return NewCartLineDTO(item), nil
}

// UpdateCartItem overwrites the requested quantity after re-checking the
// product's current stock.
func (s *service) UpdateCartItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartLineDTO, error) {
	if quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	line, err := s.cartRepo.Find(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Product not found!")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart line")
	}

	if quantity > product.Quantity {
		return nil, pkgerrors.New(pkgerrors.CodeInsufficientStock, "Not enough stock!")
	}

	if _, err := s.cartRepo.UpdateQuantity(ctx, userID, productID, quantity); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart line")
	}
	line.Quantity = quantity
	return NewCartLineDTO(line), nil
}

// DeleteCartItem removes the line and returns its last-known state.
func (s *service) DeleteCartItem(ctx context.Context, userID, productID uuid.UUID) (*CartLineDTO, error) {
	if _, err := s.findProduct(ctx, productID); err != nil {
		return nil, err
	}

	line, err := s.cartRepo.Find(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Product not found!")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart line")
	}

	if _, err := s.cartRepo.Delete(ctx, userID, productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart line")
	}
	return NewCartLineDTO(line), nil
}

func (s *service) findProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	product, err := s.catalogRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Product not found!")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}
