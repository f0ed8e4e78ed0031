package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
)

// CartRecord is an anonymous shopping session. Its ID doubles as the cart session token.
type CartRecord struct {
	ID           uuid.UUID        `gorm:"column:id;primaryKey"`
	Status       enums.CartStatus `gorm:"column:status;not null;default:'active'"`
	CouponCode   *string          `gorm:"column:coupon_code"`
	Items        []CartItem       `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CheckedOutAt *time.Time       `gorm:"column:checked_out_at"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
