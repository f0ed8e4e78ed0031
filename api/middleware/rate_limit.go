package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/api/responses"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

type rateLimiterStore interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
	RateLimitKey(parts ...string) string
}

// RateLimitPolicy bounds attempts per client IP and per cart session within a fixed window.
// A zero limit disables that scope.
type RateLimitPolicy struct {
	name      string
	window    time.Duration
	ipLimit   int
	cartLimit int
}

func NewRateLimitPolicy(name string, window time.Duration, ipLimit, cartLimit int) RateLimitPolicy {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "default"
	}
	return RateLimitPolicy{name: name, window: window, ipLimit: ipLimit, cartLimit: cartLimit}
}

func (p RateLimitPolicy) enabled() bool {
	return p.window > 0 && (p.ipLimit > 0 || p.cartLimit > 0)
}

type rateScope struct {
	name  string
	id    string
	limit int
}

// scopes lists the counters a request is charged against. Requests without a cart
// session are only limited by IP.
func (p RateLimitPolicy) scopes(r *http.Request) []rateScope {
	var out []rateScope
	if ip := clientIP(r); p.ipLimit > 0 && ip != "" {
		out = append(out, rateScope{name: "ip", id: ip, limit: p.ipLimit})
	}
	if cartID := CartIDFromContext(r.Context()); p.cartLimit > 0 && cartID != uuid.Nil {
		out = append(out, rateScope{name: "cart", id: cartID.String(), limit: p.cartLimit})
	}
	return out
}

// RateLimit throttles coupon entry so codes cannot be guessed by brute force. A nil store
// or a disabled policy is a pass-through. Blocked requests get 429 with Retry-After.
func RateLimit(policy RateLimitPolicy, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			for _, scope := range policy.scopes(r) {
				key := store.RateLimitKey(policy.name, scope.name, scope.id)
				count, err := store.IncrWithTTL(ctx, key, policy.window)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
					return
				}
				if count > int64(scope.limit) {
					reject(ctx, w, logg, policy, scope, count)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func reject(ctx context.Context, w http.ResponseWriter, logg *logger.Logger, policy RateLimitPolicy, scope rateScope, count int64) {
	if logg != nil {
		logg.Warn(logg.WithFields(ctx, map[string]any{
			"scope":          scope.name,
			"policy":         policy.name,
			"attempts":       count,
			"limit":          scope.limit,
			"window_seconds": int(policy.window.Seconds()),
		}), "rate_limit.blocked")
	}
	w.Header().Set("Retry-After", strconv.Itoa(int(policy.window.Round(time.Second).Seconds())))
	responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many attempts, try again later"))
}

// clientIP trusts the first X-Forwarded-For hop, then X-Real-IP, then the socket peer.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
