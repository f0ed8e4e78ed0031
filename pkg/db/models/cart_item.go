package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem persists a line of a CartRecord. The unit price and stock flag are
// snapshots taken when the product was added.
type CartItem struct {
	ID             uuid.UUID `gorm:"column:id;primaryKey"`
	CartID         uuid.UUID `gorm:"column:cart_id;not null;uniqueIndex:cart_items_cart_product_key"`
	ProductID      int64     `gorm:"column:product_id;not null;uniqueIndex:cart_items_cart_product_key"`
	Position       int       `gorm:"column:position;not null;default:0"`
	Name           string    `gorm:"column:name;not null"`
	Color          string    `gorm:"column:color;not null;default:''"`
	Size           string    `gorm:"column:size;not null;default:''"`
	UnitPriceCents int64     `gorm:"column:unit_price_cents;not null"`
	Quantity       int       `gorm:"column:quantity;not null"`
	InStock        bool      `gorm:"column:in_stock;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
