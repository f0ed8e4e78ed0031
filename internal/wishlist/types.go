package wishlist

import (
	"time"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
)

// WishlistItemDTO wraps the product card included in a wishlist row.
type WishlistItemDTO struct {
	Product catalog.ProductSummaryDTO `json:"product"`
	AddedAt time.Time                 `json:"added_at"`
}

// WishlistDTO is a session's saved products.
type WishlistDTO struct {
	Items []WishlistItemDTO `json:"items"`
	Total int               `json:"total"`
}
