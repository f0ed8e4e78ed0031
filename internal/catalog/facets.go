package catalog

import (
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/angelmondragon/storefront-backend/pkg/money"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

// CategoryCount is a sidebar entry: a category and how many products it holds.
type CategoryCount struct {
	Category enums.ProductCategory
	Label    string
	Count    int
}

// Facets summarises the catalog for the filter sidebar.
type Facets struct {
	Categories    []CategoryCount
	Colors        types.StringSet
	Sizes         types.StringSet
	MinPriceCents money.Cents
	MaxPriceCents money.Cents
}

// BuildFacets counts products per category ("all" first, then the known
// departments, then any other category seen) and collects colors, sizes and
// the price span.
func BuildFacets(products []Product) Facets {
	counts := make(map[enums.ProductCategory]int)
	var extra []enums.ProductCategory
	var colors, sizes []string

	facets := Facets{}
	for i, p := range products {
		if _, seen := counts[p.Category]; !seen && !p.Category.IsValid() && p.Category != "" {
			extra = append(extra, p.Category)
		}
		counts[p.Category]++
		colors = append(colors, p.Colors...)
		sizes = append(sizes, p.Sizes...)

		if i == 0 || p.PriceCents < facets.MinPriceCents {
			facets.MinPriceCents = p.PriceCents
		}
		if i == 0 || p.PriceCents > facets.MaxPriceCents {
			facets.MaxPriceCents = p.PriceCents
		}
	}

	facets.Categories = append(facets.Categories, CategoryCount{
		Category: enums.ProductCategoryAll,
		Label:    enums.ProductCategoryAll.Label(),
		Count:    len(products),
	})
	for _, c := range append(enums.ProductCategories(), extra...) {
		facets.Categories = append(facets.Categories, CategoryCount{
			Category: c,
			Label:    c.Label(),
			Count:    counts[c],
		})
	}
	facets.Colors = types.NewStringSet(colors...)
	facets.Sizes = types.NewStringSet(sizes...)
	return facets
}
