package catalog

import (
	"time"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/angelmondragon/storefront-backend/pkg/money"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

func centsPtr(dollars int64) *money.Cents {
	v := money.FromDollars(dollars)
	return &v
}

func intPtr(v int) *int {
	return &v
}

func badge(t enums.BadgeType, text string) *Badge {
	return &Badge{Type: t, Text: text}
}

// Fixtures returns the seed catalog in featured order.
func Fixtures() []Product {
	return []Product{
		{
			ID:                  1,
			Name:                "Premium Cotton T-Shirt",
			Description:         "Soft 100% organic cotton tee with a modern fit and breathable fabric for all-day comfort.",
			PriceCents:          money.FromDollars(99),
			CompareAtPriceCents: centsPtr(129),
			Category:            enums.ProductCategoryMen,
			Colors:              types.NewStringSet("#000000", "#ffffff", "#3b82f6"),
			Sizes:               types.NewStringSet("S", "M", "L", "XL"),
			Rating:              4,
			ReviewCount:         128,
			Badge:               badge(enums.BadgeTypeHot, "Hot"),
			DiscountPercent:     intPtr(23),
			InStock:             true,
			StockCount:          47,
		},
		{
			ID:                  2,
			Name:                "Designer Floral Dress",
			Description:         "Flowing floral print dress cut from lightweight fabric for warm-weather occasions.",
			PriceCents:          money.FromDollars(149),
			CompareAtPriceCents: centsPtr(199),
			Category:            enums.ProductCategoryWomen,
			Colors:              types.NewStringSet("#ec4899", "#8b5cf6", "#10b981"),
			Sizes:               types.NewStringSet("XS", "S", "M", "L"),
			Rating:              5,
			ReviewCount:         89,
			Badge:               badge(enums.BadgeTypeSale, "Sale"),
			DiscountPercent:     intPtr(25),
			InStock:             true,
			StockCount:          32,
		},
		{
			ID:          3,
			Name:        "Kids Superhero Costume",
			Description: "Durable dress-up costume with a detachable cape, sized for growing heroes.",
			PriceCents:  money.FromDollars(79),
			Category:    enums.ProductCategoryKids,
			Colors:      types.NewStringSet("#dc2626", "#2563eb", "#059669"),
			Sizes:       types.NewStringSet("2-3Y", "4-5Y", "6-7Y", "8-9Y"),
			Rating:      4,
			ReviewCount: 45,
			Badge:       badge(enums.BadgeTypeNew, "New"),
			InStock:     true,
			StockCount:  21,
		},
		{
			ID:                  4,
			Name:                "Leather Laptop Bag",
			Description:         "Full-grain leather bag with a padded sleeve that fits most 15 inch laptops.",
			PriceCents:          money.FromDollars(199),
			CompareAtPriceCents: centsPtr(249),
			Category:            enums.ProductCategoryAccessories,
			Colors:              types.NewStringSet("#92400e", "#000000", "#6b7280"),
			Sizes:               types.NewStringSet("One Size"),
			Rating:              5,
			ReviewCount:         156,
			Badge:               badge(enums.BadgeTypeHot, "Hot"),
			DiscountPercent:     intPtr(20),
			InStock:             false,
			StockCount:          0,
		},
		{
			ID:                  5,
			Name:                "Sports Running Shoes",
			Description:         "Cushioned running shoes with a breathable mesh upper and grippy outsole.",
			PriceCents:          money.FromDollars(159),
			CompareAtPriceCents: centsPtr(199),
			Category:            enums.ProductCategoryMen,
			Colors:              types.NewStringSet("#000000", "#ffffff", "#ef4444"),
			Sizes:               types.NewStringSet("7", "8", "9", "10", "11"),
			Rating:              4,
			ReviewCount:         78,
			Badge:               badge(enums.BadgeTypeSale, "Sale"),
			DiscountPercent:     intPtr(20),
			InStock:             true,
			StockCount:          18,
		},
		{
			ID:          6,
			Name:        "Elegant Evening Gown",
			Description: "Floor-length gown with a fitted bodice and soft draping for formal evenings.",
			PriceCents:  money.FromDollars(299),
			Category:    enums.ProductCategoryWomen,
			Colors:      types.NewStringSet("#000000", "#7c3aed", "#db2777"),
			Sizes:       types.NewStringSet("XS", "S", "M", "L", "XL"),
			Rating:      5,
			ReviewCount: 34,
			Badge:       badge(enums.BadgeTypeNew, "New"),
			InStock:     true,
			StockCount:  9,
		},
		{
			ID:                  7,
			Name:                "Casual Denim Jacket",
			Description:         "Classic washed denim jacket with button front and chest pockets.",
			PriceCents:          money.FromDollars(129),
			CompareAtPriceCents: centsPtr(179),
			Category:            enums.ProductCategoryUnisex,
			Colors:              types.NewStringSet("#1e40af", "#374151", "#000000"),
			Sizes:               types.NewStringSet("S", "M", "L", "XL", "XXL"),
			Rating:              4,
			ReviewCount:         92,
			Badge:               badge(enums.BadgeTypeSale, "Sale"),
			DiscountPercent:     intPtr(28),
			InStock:             true,
			StockCount:          26,
		},
		{
			ID:                  8,
			Name:                "Designer Sunglasses",
			Description:         "Polarised lenses in a lightweight frame with full UV400 protection.",
			PriceCents:          money.FromDollars(89),
			CompareAtPriceCents: centsPtr(119),
			Category:            enums.ProductCategoryAccessories,
			Colors:              types.NewStringSet("#000000", "#92400e", "#6b7280"),
			Sizes:               types.NewStringSet("One Size"),
			Rating:              4,
			ReviewCount:         203,
			Badge:               badge(enums.BadgeTypeHot, "Hot"),
			DiscountPercent:     intPtr(25),
			InStock:             true,
			StockCount:          54,
		},
	}
}

type reviewTemplate struct {
	author  string
	rating  int
	date    string
	comment string
}

var reviewTemplates = []reviewTemplate{
	{"John D.", 5, "2024-01-15", "Excellent quality and perfect fit. Still looks new after multiple washes."},
	{"Sarah M.", 4, "2024-01-12", "Great overall. Love the material and the cut is very flattering."},
	{"Mike R.", 5, "2024-01-08", "This is my third purchase. Quality is consistent and shipping is always fast."},
}

// FixtureReviews returns three verified reviews for every fixture product.
// Review ids are productID*10 + n.
func FixtureReviews() []Review {
	products := Fixtures()
	out := make([]Review, 0, len(products)*len(reviewTemplates))
	for _, p := range products {
		for i, tmpl := range reviewTemplates {
			reviewedOn, _ := time.Parse(time.DateOnly, tmpl.date)
			out = append(out, Review{
				ID:         p.ID*10 + int64(i+1),
				ProductID:  p.ID,
				Author:     tmpl.author,
				Rating:     tmpl.rating,
				Comment:    tmpl.comment,
				Verified:   true,
				ReviewedOn: reviewedOn,
			})
		}
	}
	return out
}
