package wishlist

import (
	"context"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/navigation"
)

type productLookup interface {
	Lookup(ctx context.Context, id int64) (*catalog.Product, error)
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	Repo      *Repository
	Products  productLookup
	Navigator navigation.Navigator
}

// Service exposes business rules for wishlist management.
type Service interface {
	List(ctx context.Context, cartID uuid.UUID) (*WishlistDTO, error)
	Add(ctx context.Context, cartID uuid.UUID, productID int64) error
	Remove(ctx context.Context, cartID uuid.UUID, productID int64) error
}

type service struct {
	repo     *Repository
	products productLookup
	nav      navigation.Navigator
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist repo is required")
	}
	if params.Products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product lookup is required")
	}
	return &service{
		repo:     params.Repo,
		products: params.Products,
		nav:      params.Navigator,
	}, nil
}

// List returns the wishlist for a cart session, newest first.
func (s *service) List(ctx context.Context, cartID uuid.UUID) (*WishlistDTO, error) {
	if err := s.ensureCart(ctx, cartID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListItems(ctx, cartID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlist")
	}
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	rows, err := s.repo.ListProducts(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist products")
	}
	byID := make(map[int64]catalog.Product, len(rows))
	for _, row := range rows {
		byID[row.ID] = catalog.FromModel(row)
	}

	dto := &WishlistDTO{Items: make([]WishlistItemDTO, 0, len(items))}
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		dto.Items = append(dto.Items, WishlistItemDTO{
			Product: catalog.NewProductSummaryDTO(product, s.nav),
			AddedAt: item.CreatedAt,
		})
	}
	dto.Total = len(dto.Items)
	return dto, nil
}

// Add ensures the product exists and saves it. Saving twice is a no-op.
func (s *service) Add(ctx context.Context, cartID uuid.UUID, productID int64) error {
	if err := s.ensureCart(ctx, cartID); err != nil {
		return err
	}
	if _, err := s.products.Lookup(ctx, productID); err != nil {
		return err
	}
	if err := s.repo.AddItem(ctx, cartID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add wishlist item")
	}
	return nil
}

// Remove drops the wishlist entry.
func (s *service) Remove(ctx context.Context, cartID uuid.UUID, productID int64) error {
	if err := s.ensureCart(ctx, cartID); err != nil {
		return err
	}
	removed, err := s.repo.RemoveItem(ctx, cartID, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove wishlist item")
	}
	if !removed {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product is not in the wishlist")
	}
	return nil
}

func (s *service) ensureCart(ctx context.Context, cartID uuid.UUID) error {
	if cartID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart session is required")
	}
	exists, err := s.repo.CartExists(ctx, cartID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	if !exists {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
	}
	return nil
}
