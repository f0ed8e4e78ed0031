package middleware

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const ctxCartID contextKey = "cart_id"

// CartIDFromContext returns the cart session bound by CartSession, or uuid.Nil.
func CartIDFromContext(ctx context.Context) uuid.UUID {
	if ctx == nil {
		return uuid.Nil
	}
	if v, ok := ctx.Value(ctxCartID).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}

// WithCartID injects the cart session into the context.
func WithCartID(ctx context.Context, cartID uuid.UUID) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxCartID, cartID)
}
