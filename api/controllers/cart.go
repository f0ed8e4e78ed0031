package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/api/middleware"
	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/api/validators"
	"github.com/angelmondragon/storefront-backend/internal/cart"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

// Quantity bounds mirror cart.MaxLineQuantity; the service enforces the same ceiling on totals.
type addItemRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1,max=99"`
	Color     string `json:"color" validate:"omitempty,hexcolor"`
	Size      string `json:"size" validate:"omitempty,max=32"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0,max=99"`
}

type applyCouponRequest struct {
	Code string `json:"code" validate:"required,coupon_code"`
}

// CartCreate opens a cart session and returns its id in the body and the
// X-Cart-Session header.
func CartCreate(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		created, err := svc.Create(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		w.Header().Set(middleware.CartSessionHeader, created.ID.String())
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func CartGet(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartHandler(svc, logg, func(r *http.Request, cartID uuid.UUID) (any, error) {
		return svc.Get(r.Context(), cartID)
	})
}

// CartSummary returns only the order summary panel.
func CartSummary(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartHandler(svc, logg, func(r *http.Request, cartID uuid.UUID) (any, error) {
		return svc.Summary(r.Context(), cartID)
	})
}

func CartAddItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartHandler(svc, logg, func(r *http.Request, cartID uuid.UUID) (any, error) {
		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.AddItem(r.Context(), cartID, cart.AddItemInput{
			ProductID: payload.ProductID,
			Quantity:  payload.Quantity,
			Color:     payload.Color,
			Size:      payload.Size,
		})
	})
}

// CartUpdateQuantity sets a line's quantity; zero removes the line.
func CartUpdateQuantity(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartHandler(svc, logg, func(r *http.Request, cartID uuid.UUID) (any, error) {
		productID, err := validators.ParsePathInt64(r, "productId")
		if err != nil {
			return nil, err
		}
		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.UpdateQuantity(r.Context(), cartID, productID, *payload.Quantity)
	})
}

func CartIncrement(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return lineHandler(svc, logg, func(ctx context.Context, cartID uuid.UUID, productID int64) (*cart.CartDTO, error) {
		return svc.Increment(ctx, cartID, productID)
	})
}

func CartDecrement(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return lineHandler(svc, logg, func(ctx context.Context, cartID uuid.UUID, productID int64) (*cart.CartDTO, error) {
		return svc.Decrement(ctx, cartID, productID)
	})
}

func CartRemoveItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return lineHandler(svc, logg, func(ctx context.Context, cartID uuid.UUID, productID int64) (*cart.CartDTO, error) {
		return svc.RemoveItem(ctx, cartID, productID)
	})
}

func CartMoveToWishlist(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return lineHandler(svc, logg, func(ctx context.Context, cartID uuid.UUID, productID int64) (*cart.CartDTO, error) {
		return svc.MoveToWishlist(ctx, cartID, productID)
	})
}

func CartApplyCoupon(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartHandler(svc, logg, func(r *http.Request, cartID uuid.UUID) (any, error) {
		var payload applyCouponRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.ApplyCoupon(r.Context(), cartID, payload.Code)
	})
}

func CartRemoveCoupon(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartHandler(svc, logg, func(r *http.Request, cartID uuid.UUID) (any, error) {
		return svc.RemoveCoupon(r.Context(), cartID)
	})
}

// Checkout runs the checkout gate for the session cart.
func Checkout(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartHandler(svc, logg, func(r *http.Request, cartID uuid.UUID) (any, error) {
		return svc.Checkout(r.Context(), cartID)
	})
}

type lineOp func(ctx context.Context, cartID uuid.UUID, productID int64) (*cart.CartDTO, error)

func lineHandler(svc cart.Service, logg *logger.Logger, op lineOp) http.HandlerFunc {
	return cartHandler(svc, logg, func(r *http.Request, cartID uuid.UUID) (any, error) {
		productID, err := validators.ParsePathInt64(r, "productId")
		if err != nil {
			return nil, err
		}
		return op(r.Context(), cartID, productID)
	})
}

// cartHandler resolves the session cart and writes fn's result or error.
func cartHandler(svc cart.Service, logg *logger.Logger, fn func(r *http.Request, cartID uuid.UUID) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		cartID, err := sessionCartID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := fn(r, cartID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func sessionCartID(r *http.Request) (uuid.UUID, error) {
	cartID := middleware.CartIDFromContext(r.Context())
	if cartID == uuid.Nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "cart session is required")
	}
	return cartID, nil
}
