package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/api/responses"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

// CartSessionHeader carries the cart session id returned by POST /api/v1/cart.
const CartSessionHeader = "X-Cart-Session"

// CartSession requires a well-formed cart session header and binds it to the
// request context. Whether the cart exists is left to the services.
func CartSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(CartSessionHeader))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, CartSessionHeader+" header required"))
				return
			}
			cartID, err := uuid.Parse(raw)
			if err != nil || cartID == uuid.Nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid cart session").
					WithDetails(map[string]any{"header": CartSessionHeader}))
				return
			}

			ctx := WithCartID(r.Context(), cartID)
			if logg != nil {
				ctx = logg.WithCartID(ctx, cartID.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
