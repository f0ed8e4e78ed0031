package catalog

import (
	"time"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/angelmondragon/storefront-backend/pkg/money"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

// Product is the engine's view of a catalog listing.
type Product struct {
	ID                  int64
	Name                string
	Description         string
	PriceCents          money.Cents
	CompareAtPriceCents *money.Cents
	Category            enums.ProductCategory
	Colors              types.StringSet
	Sizes               types.StringSet
	Rating              int
	ReviewCount         int
	Badge               *Badge
	DiscountPercent     *int
	InStock             bool
	StockCount          int
}

// Badge is the cosmetic tag rendered on a product card.
type Badge struct {
	Type enums.BadgeType `json:"type"`
	Text string          `json:"text"`
}

// Review is a shopper review of a product.
type Review struct {
	ID         int64
	ProductID  int64
	Author     string
	Rating     int
	Comment    string
	Verified   bool
	ReviewedOn time.Time
}

// FromModel maps a persisted product into the engine type.
func FromModel(m models.Product) Product {
	p := Product{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		PriceCents:      money.Cents(m.PriceCents),
		Category:        m.Category,
		Colors:          append(types.StringSet{}, m.Colors...),
		Sizes:           append(types.StringSet{}, m.Sizes...),
		Rating:          m.Rating,
		ReviewCount:     m.ReviewCount,
		DiscountPercent: m.DiscountPercent,
		InStock:         m.InStock,
		StockCount:      m.StockCount,
	}
	if m.CompareAtPriceCents != nil {
		v := money.Cents(*m.CompareAtPriceCents)
		p.CompareAtPriceCents = &v
	}
	if m.BadgeType != nil {
		badge := &Badge{Type: *m.BadgeType}
		if m.BadgeText != nil {
			badge.Text = *m.BadgeText
		}
		p.Badge = badge
	}
	return p
}

// ToModel maps the engine type into its persisted form.
func (p Product) ToModel() models.Product {
	m := models.Product{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		PriceCents:      int64(p.PriceCents),
		Category:        p.Category,
		Colors:          types.NewStringSet(p.Colors...),
		Sizes:           types.NewStringSet(p.Sizes...),
		Rating:          p.Rating,
		ReviewCount:     p.ReviewCount,
		DiscountPercent: p.DiscountPercent,
		InStock:         p.InStock,
		StockCount:      p.StockCount,
	}
	if p.CompareAtPriceCents != nil {
		v := int64(*p.CompareAtPriceCents)
		m.CompareAtPriceCents = &v
	}
	if p.Badge != nil {
		badgeType := p.Badge.Type
		text := p.Badge.Text
		m.BadgeType = &badgeType
		m.BadgeText = &text
	}
	return m
}

// ReviewFromModel maps a persisted review into the engine type.
func ReviewFromModel(m models.Review) Review {
	return Review{
		ID:         m.ID,
		ProductID:  m.ProductID,
		Author:     m.Author,
		Rating:     m.Rating,
		Comment:    m.Comment,
		Verified:   m.Verified,
		ReviewedOn: m.ReviewedOn,
	}
}

// ToModel maps the review into its persisted form.
func (r Review) ToModel() models.Review {
	return models.Review{
		ID:         r.ID,
		ProductID:  r.ProductID,
		Author:     r.Author,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Verified:   r.Verified,
		ReviewedOn: r.ReviewedOn,
	}
}
