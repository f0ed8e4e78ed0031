package models

import (
	"time"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

// Product represents a catalog listing. Rows are seeded once and never edited.
type Product struct {
	ID                  int64                 `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name                string                `gorm:"column:name;not null"`
	Description         string                `gorm:"column:description;not null;default:''"`
	PriceCents          int64                 `gorm:"column:price_cents;not null"`
	CompareAtPriceCents *int64                `gorm:"column:compare_at_price_cents"`
	Category            enums.ProductCategory `gorm:"column:category;not null;index:products_category_idx"`
	Colors              types.StringSet       `gorm:"column:colors;type:text;not null"`
	Sizes               types.StringSet       `gorm:"column:sizes;type:text;not null"`
	Rating              int                   `gorm:"column:rating;not null;default:0"`
	ReviewCount         int                   `gorm:"column:review_count;not null;default:0"`
	BadgeType           *enums.BadgeType      `gorm:"column:badge_type"`
	BadgeText           *string               `gorm:"column:badge_text"`
	DiscountPercent     *int                  `gorm:"column:discount_percent"`
	InStock             bool                  `gorm:"column:in_stock;not null"`
	StockCount          int                   `gorm:"column:stock_count;not null;default:0"`
	Reviews             []Review              `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

// Review is a shopper review shown on the single product page.
type Review struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement:false"`
	ProductID  int64     `gorm:"column:product_id;not null;index:reviews_product_id_idx"`
	Author     string    `gorm:"column:author;not null"`
	Rating     int       `gorm:"column:rating;not null"`
	Comment    string    `gorm:"column:comment;not null;default:''"`
	Verified   bool      `gorm:"column:verified;not null;default:false"`
	ReviewedOn time.Time `gorm:"column:reviewed_on;not null"`
}

// Coupon is a redeemable promotion keyed by its upper-cased code.
type Coupon struct {
	Code                 string           `gorm:"column:code;primaryKey"`
	Kind                 enums.CouponKind `gorm:"column:kind;not null"`
	Amount               int64            `gorm:"column:amount;not null"`
	MinimumSubtotalCents *int64           `gorm:"column:minimum_subtotal_cents"`
	CreatedAt            time.Time        `gorm:"column:created_at;autoCreateTime"`
}
