package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem links a cart session to a saved product.
type WishlistItem struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey"`
	CartID    uuid.UUID `gorm:"column:cart_id;not null;index:wishlist_items_cart_id_idx;uniqueIndex:wishlist_items_cart_product_key"`
	ProductID int64     `gorm:"column:product_id;not null;uniqueIndex:wishlist_items_cart_product_key"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
