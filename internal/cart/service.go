package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/pkg/db"
	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/navigation"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type productLookup interface {
	Lookup(ctx context.Context, id int64) (*catalog.Product, error)
}

type wishlistSaver interface {
	SaveTx(ctx context.Context, tx *gorm.DB, cartID uuid.UUID, productID int64) error
}

type cartMetrics interface {
	IncCouponApplied(code string)
	IncCouponRejected(reason string)
	IncCheckout(outcome string)
}

// Service exposes cart session operations.
type Service interface {
	Create(ctx context.Context) (*CartDTO, error)
	Get(ctx context.Context, cartID uuid.UUID) (*CartDTO, error)
	AddItem(ctx context.Context, cartID uuid.UUID, input AddItemInput) (*CartDTO, error)
	UpdateQuantity(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) (*CartDTO, error)
	Increment(ctx context.Context, cartID uuid.UUID, productID int64) (*CartDTO, error)
	Decrement(ctx context.Context, cartID uuid.UUID, productID int64) (*CartDTO, error)
	RemoveItem(ctx context.Context, cartID uuid.UUID, productID int64) (*CartDTO, error)
	MoveToWishlist(ctx context.Context, cartID uuid.UUID, productID int64) (*CartDTO, error)
	ApplyCoupon(ctx context.Context, cartID uuid.UUID, code string) (*CartDTO, error)
	RemoveCoupon(ctx context.Context, cartID uuid.UUID) (*CartDTO, error)
	Summary(ctx context.Context, cartID uuid.UUID) (*SummaryDTO, error)
	Checkout(ctx context.Context, cartID uuid.UUID) (*CheckoutResultDTO, error)
	Seed(ctx context.Context) error
}

// AddItemInput captures a product added from the product page.
type AddItemInput struct {
	ProductID int64
	Quantity  int
	Color     string
	Size      string
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Repo      CartRepository
	TxRunner  txRunner
	Products  productLookup
	Wishlist  wishlistSaver
	Navigator navigation.Navigator
	Metrics   cartMetrics
	Logger    *logger.Logger
}

type service struct {
	repo     CartRepository
	tx       txRunner
	products productLookup
	wishlist wishlistSaver
	nav      navigation.Navigator
	metrics  cartMetrics
	logg     *logger.Logger
}

// NewService builds a cart service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if params.TxRunner == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product lookup required")
	}
	if params.Wishlist == nil {
		return nil, fmt.Errorf("wishlist saver required")
	}
	return &service{
		repo:     params.Repo,
		tx:       params.TxRunner,
		products: params.Products,
		wishlist: params.Wishlist,
		nav:      params.Navigator,
		metrics:  params.Metrics,
		logg:     params.Logger,
	}, nil
}

// Create opens a new empty cart session.
func (s *service) Create(ctx context.Context) (*CartDTO, error) {
	record, err := s.repo.Create(ctx, &models.CartRecord{
		ID:     uuid.New(),
		Status: enums.CartStatusActive,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "cart session already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cart")
	}
	dto := NewCartDTO(record, nil, s.nav)
	return &dto, nil
}

// Get returns the cart with priced lines and the checkout gate.
func (s *service) Get(ctx context.Context, cartID uuid.UUID) (*CartDTO, error) {
	record, err := s.load(ctx, s.repo, cartID)
	if err != nil {
		return nil, err
	}
	coupon, err := s.activeCoupon(ctx, s.repo, record)
	if err != nil {
		return nil, err
	}
	dto := NewCartDTO(record, coupon, s.nav)
	return &dto, nil
}

// AddItem locks the current catalog price and stock flag into a new or existing line.
func (s *service) AddItem(ctx context.Context, cartID uuid.UUID, input AddItemInput) (*CartDTO, error) {
	if input.ProductID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id must be positive")
	}
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}
	if input.Quantity > MaxLineQuantity {
		return nil, quantityLimit(input.ProductID, input.Quantity)
	}

	product, err := s.products.Lookup(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	color := strings.TrimSpace(input.Color)
	if color != "" && len(product.Colors) > 0 && !product.Colors.Contains(color) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "color is not available for this product").
			WithDetails(map[string]any{"color": color, "available": product.Colors})
	}
	size := strings.TrimSpace(input.Size)
	if size != "" && len(product.Sizes) > 0 && !product.Sizes.Contains(size) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "size is not available for this product").
			WithDetails(map[string]any{"size": size, "available": product.Sizes})
	}

	line := Line{
		ProductID:      product.ID,
		Name:           product.Name,
		Color:          color,
		Size:           size,
		UnitPriceCents: product.PriceCents,
		Quantity:       input.Quantity,
		InStock:        product.InStock,
	}
	return s.mutateLines(ctx, cartID, func(lines []Line) ([]Line, error) {
		return Add(lines, line), nil
	})
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *service) UpdateQuantity(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) (*CartDTO, error) {
	return s.mutateLines(ctx, cartID, func(lines []Line) ([]Line, error) {
		return requireLine(SetQuantity(lines, productID, quantity))
	})
}

// Increment adds one unit to a line.
func (s *service) Increment(ctx context.Context, cartID uuid.UUID, productID int64) (*CartDTO, error) {
	return s.mutateLines(ctx, cartID, func(lines []Line) ([]Line, error) {
		return requireLine(Increment(lines, productID))
	})
}

// Decrement removes one unit from a line; the last unit removes the line.
func (s *service) Decrement(ctx context.Context, cartID uuid.UUID, productID int64) (*CartDTO, error) {
	return s.mutateLines(ctx, cartID, func(lines []Line) ([]Line, error) {
		return requireLine(Decrement(lines, productID))
	})
}

// RemoveItem drops a line.
func (s *service) RemoveItem(ctx context.Context, cartID uuid.UUID, productID int64) (*CartDTO, error) {
	return s.mutateLines(ctx, cartID, func(lines []Line) ([]Line, error) {
		return requireLine(Remove(lines, productID))
	})
}

// MoveToWishlist removes a line and saves its product to the session wishlist
// in the same transaction.
func (s *service) MoveToWishlist(ctx context.Context, cartID uuid.UUID, productID int64) (*CartDTO, error) {
	return s.mutate(ctx, cartID, func(tx *gorm.DB, record *models.CartRecord, lines []Line) ([]Line, error) {
		next, moved := MoveToWishlist(lines, productID)
		if moved == nil {
			return nil, notInCart()
		}
		if err := s.wishlist.SaveTx(ctx, tx, record.ID, moved.ProductID); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save wishlist item")
		}
		return next, nil
	})
}

// ApplyCoupon validates and attaches a coupon. Only one coupon may be active.
func (s *service) ApplyCoupon(ctx context.Context, cartID uuid.UUID, code string) (*CartDTO, error) {
	if NormalizeCode(code) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "coupon code is required")
	}

	var result *CartDTO
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		record, err := s.loadActive(ctx, repo, cartID)
		if err != nil {
			return err
		}

		rows, err := repo.ListCoupons(ctx)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list coupons")
		}
		known := make([]Coupon, 0, len(rows))
		for _, row := range rows {
			known = append(known, CouponFromModel(row))
		}

		totals := ComputeTotals(LinesFromItems(record.Items), nil)
		coupon, err := ApplyCoupon(couponCode(record), known, code, totals.Subtotal)
		if err != nil {
			return err
		}

		applied := NormalizeCode(coupon.Code)
		record.CouponCode = &applied
		if err := repo.UpdateState(ctx, record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart")
		}
		dto := NewCartDTO(record, coupon, s.nav)
		result = &dto
		return nil
	})
	if err != nil {
		var rejection *RejectionError
		if errors.As(err, &rejection) {
			if s.metrics != nil {
				s.metrics.IncCouponRejected(rejection.Reason.String())
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, rejection, rejection.Error()).
				WithDetails(map[string]any{"code": rejection.Code}).
				WithReason(rejection.Reason.String())
		}
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncCouponApplied(result.Coupon.Code)
	}
	return result, nil
}

// RemoveCoupon detaches the active coupon, if any.
func (s *service) RemoveCoupon(ctx context.Context, cartID uuid.UUID) (*CartDTO, error) {
	var result *CartDTO
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		record, err := s.loadActive(ctx, repo, cartID)
		if err != nil {
			return err
		}
		record.CouponCode = nil
		if err := repo.UpdateState(ctx, record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart")
		}
		dto := NewCartDTO(record, nil, s.nav)
		result = &dto
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Summary returns the order summary panel for the cart.
func (s *service) Summary(ctx context.Context, cartID uuid.UUID) (*SummaryDTO, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return &cart.SummaryDTO, nil
}

// Checkout runs the checkout gate and, when it passes, closes the cart.
func (s *service) Checkout(ctx context.Context, cartID uuid.UUID) (*CheckoutResultDTO, error) {
	var result *CheckoutResultDTO
	var blocked *CheckoutDecision
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		record, err := s.loadActive(ctx, repo, cartID)
		if err != nil {
			return err
		}

		lines := LinesFromItems(record.Items)
		decision := CheckCheckout(lines)
		if !decision.Allowed {
			blocked = &decision
			return pkgerrors.New(pkgerrors.CodeStateConflict, decision.Reason.Message()).
				WithDetails(map[string]any{"out_of_stock_product_ids": decision.OutOfStock}).
				WithReason(decision.Reason.String())
		}

		coupon, err := s.activeCoupon(ctx, repo, record)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		record.Status = enums.CartStatusCheckedOut
		record.CheckedOutAt = &now
		if err := repo.UpdateState(ctx, record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart")
		}
		result = &CheckoutResultDTO{
			CartID:       record.ID,
			Status:       record.Status.String(),
			Totals:       NewTotalsDTO(ComputeTotals(lines, coupon)),
			CheckedOutAt: now,
		}
		return nil
	})
	if s.metrics != nil {
		switch {
		case blocked != nil:
			s.metrics.IncCheckout(blocked.Reason.String())
		case err == nil:
			s.metrics.IncCheckout("completed")
		}
	}
	if err != nil {
		return nil, err
	}
	if s.logg != nil {
		logCtx := s.logg.WithFields(s.logg.WithCartID(ctx, cartID.String()), map[string]any{
			"total_cents": result.Totals.TotalCents,
		})
		s.logg.Info(logCtx, "cart checked out")
	}
	return result, nil
}

// Seed stores the fixture coupons. Existing codes are left untouched.
func (s *service) Seed(ctx context.Context) error {
	fixtures := FixtureCoupons()
	rows := make([]models.Coupon, 0, len(fixtures))
	for _, c := range fixtures {
		rows = append(rows, c.ToModel())
	}
	if err := s.repo.InsertCoupons(ctx, rows); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed coupons")
	}
	return nil
}

func (s *service) mutateLines(ctx context.Context, cartID uuid.UUID, fn func(lines []Line) ([]Line, error)) (*CartDTO, error) {
	return s.mutate(ctx, cartID, func(_ *gorm.DB, _ *models.CartRecord, lines []Line) ([]Line, error) {
		return fn(lines)
	})
}

// mutate loads an active cart inside a transaction, applies fn to its lines and
// persists the result.
func (s *service) mutate(ctx context.Context, cartID uuid.UUID, fn func(tx *gorm.DB, record *models.CartRecord, lines []Line) ([]Line, error)) (*CartDTO, error) {
	var result *CartDTO
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		record, err := s.loadActive(ctx, repo, cartID)
		if err != nil {
			return err
		}

		current := LinesFromItems(record.Items)
		next, err := fn(tx, record, current)
		if err != nil {
			return err
		}
		if over, ok := grownPastLimit(current, next); ok {
			return quantityLimit(over.ProductID, over.Quantity)
		}

		items := ItemsFromLines(record.ID, next)
		if err := repo.ReplaceItems(ctx, record.ID, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace cart items")
		}
		record.Items = items
		if err := repo.UpdateState(ctx, record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart")
		}

		coupon, err := s.activeCoupon(ctx, repo, record)
		if err != nil {
			return err
		}
		dto := NewCartDTO(record, coupon, s.nav)
		result = &dto
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) load(ctx context.Context, repo CartRepository, cartID uuid.UUID) (*models.CartRecord, error) {
	if cartID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart session is required")
	}
	record, err := repo.FindByID(ctx, cartID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "cart not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return record, nil
}

// loadActive must run inside a transaction: it locks the cart row before reading it.
func (s *service) loadActive(ctx context.Context, repo CartRepository, cartID uuid.UUID) (*models.CartRecord, error) {
	if cartID != uuid.Nil {
		if err := repo.LockForUpdate(ctx, cartID); err != nil && !db.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lock cart")
		}
	}
	record, err := s.load(ctx, repo, cartID)
	if err != nil {
		return nil, err
	}
	if isCheckedOut(record) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is already checked out")
	}
	return record, nil
}

// activeCoupon resolves the stored coupon code. A code whose coupon no longer
// exists is treated as no coupon.
func (s *service) activeCoupon(ctx context.Context, repo CartRepository, record *models.CartRecord) (*Coupon, error) {
	code := couponCode(record)
	if code == "" {
		return nil, nil
	}
	row, err := repo.FindCoupon(ctx, code)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load coupon")
	}
	coupon := CouponFromModel(*row)
	return &coupon, nil
}

func requireLine(lines []Line, found bool) ([]Line, error) {
	if !found {
		return nil, notInCart()
	}
	return lines, nil
}

func quantityLimit(productID int64, quantity int) error {
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("a cart line holds at most %d units", MaxLineQuantity)).
		WithDetails(map[string]any{"product_id": productID, "quantity": quantity, "max": MaxLineQuantity}).
		WithReason("quantity_limit")
}

func notInCart() error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "product is not in the cart")
}
