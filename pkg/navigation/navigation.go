package navigation

import (
	"fmt"
	"net/url"
	"strings"
)

// Route names a storefront view.
type Route string

const (
	RouteHome          Route = "home"
	RouteProducts      Route = "products"
	RouteProductSingle Route = "product-single"
	RouteCart          Route = "cart"
)

var validRoutes = []Route{
	RouteHome,
	RouteProducts,
	RouteProductSingle,
	RouteCart,
}

// String implements fmt.Stringer.
func (r Route) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Route.
func (r Route) IsValid() bool {
	for _, candidate := range validRoutes {
		if candidate == r {
			return true
		}
	}
	return false
}

// Navigator resolves a route and optional parameter into a link the UI can follow.
type Navigator interface {
	Navigate(route Route, param string) string
}

// PathNavigator builds links relative to a base URL: <base>/<route>[/<param>].
type PathNavigator struct {
	base string
}

// NewPathNavigator returns a Navigator rooted at baseURL. An empty base means "/".
func NewPathNavigator(baseURL string) (*PathNavigator, error) {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = "/"
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid navigation base url %q: %w", baseURL, err)
	}
	return &PathNavigator{base: strings.TrimRight(base, "/")}, nil
}

// Navigate implements Navigator. Unknown routes fall back to home.
func (n *PathNavigator) Navigate(route Route, param string) string {
	if !route.IsValid() {
		route = RouteHome
	}
	link := n.base + "/" + string(route)
	if param = strings.TrimSpace(param); param != "" {
		link += "/" + url.PathEscape(param)
	}
	return link
}

// Func adapts a plain function into a Navigator.
type Func func(route Route, param string) string

// Navigate implements Navigator.
func (f Func) Navigate(route Route, param string) string {
	return f(route, param)
}
