package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000", // local storefront UI
	"http://localhost:5173", // vite dev server
}

// CORS returns middleware that applies the API's allowed origin policy. With no
// origins the local development defaults apply.
func CORS(origins ...string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", CartSessionHeader, IdempotencyHeader, RequestIDHeader, "X-Requested-With"},
		ExposedHeaders:   []string{CartSessionHeader, RequestIDHeader, IdempotentReplayed},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler
}
