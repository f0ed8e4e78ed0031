package catalog

import (
	"sort"
	"strings"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/angelmondragon/storefront-backend/pkg/money"
	"github.com/angelmondragon/storefront-backend/pkg/pagination"
)

// DefaultPriceMaxCents is the ceiling of the price slider ($500).
const DefaultPriceMaxCents money.Cents = 50000

// QueryParams is the full filter, sort and paging state of a catalog view.
type QueryParams struct {
	SearchTerm    string
	Category      enums.ProductCategory
	PriceMinCents money.Cents
	// PriceMaxCents <= 0 means no ceiling was chosen; DefaultPriceMaxCents applies.
	PriceMaxCents money.Cents
	Colors        []string
	Sizes         []string
	Sort          enums.SortKey
	Page          int
	PageSize      int
}

// DefaultQueryParams returns the unfiltered first page in featured order.
func DefaultQueryParams() QueryParams {
	return QueryParams{
		Category:      enums.ProductCategoryAll,
		PriceMinCents: 0,
		PriceMaxCents: DefaultPriceMaxCents,
		Sort:          enums.SortFeatured,
		Page:          pagination.DefaultPage,
		PageSize:      pagination.DefaultPageSize,
	}
}

// PageResult is one page of matching products plus paging metadata.
type PageResult struct {
	Items        []Product
	TotalMatched int
	TotalPages   int
	Page         int
	PageSize     int
	// StartIndex and EndIndex are 1-based and inclusive; both are 0 for an empty page.
	StartIndex int
	EndIndex   int
}

// Query filters, sorts and paginates products. It never mutates its input and never fails.
func Query(products []Product, params QueryParams) PageResult {
	page := pagination.NormalizePage(params.Page)
	size := params.PageSize
	if size <= 0 {
		size = pagination.DefaultPageSize
	}

	matched := Filter(products, params)
	Sort(matched, params.Sort)

	total := len(matched)
	start, end := pagination.Bounds(page, size, total)
	items := make([]Product, end-start)
	copy(items, matched[start:end])

	result := PageResult{
		Items:        items,
		TotalMatched: total,
		TotalPages:   pagination.TotalPages(total, size),
		Page:         page,
		PageSize:     size,
	}
	if len(items) > 0 {
		result.StartIndex = start + 1
		result.EndIndex = end
	}
	return result
}

func (p QueryParams) priceCeiling() money.Cents {
	if p.PriceMaxCents <= 0 {
		return DefaultPriceMaxCents
	}
	return p.PriceMaxCents
}

// Filter returns, in input order, the products that satisfy every active filter.
func Filter(products []Product, params QueryParams) []Product {
	term := strings.ToLower(params.SearchTerm)
	ceiling := params.priceCeiling()
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if !params.Category.IsAll() && p.Category != params.Category {
			continue
		}
		if p.PriceCents < params.PriceMinCents || p.PriceCents > ceiling {
			continue
		}
		if len(params.Colors) > 0 && !p.Colors.ContainsAny(params.Colors) {
			continue
		}
		if len(params.Sizes) > 0 && !p.Sizes.ContainsAny(params.Sizes) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort orders products in place. Every ordering is stable; featured keeps input order.
func Sort(products []Product, key enums.SortKey) {
	var less func(a, b Product) bool
	switch key {
	case enums.SortPriceLow:
		less = func(a, b Product) bool { return a.PriceCents < b.PriceCents }
	case enums.SortPriceHigh:
		less = func(a, b Product) bool { return a.PriceCents > b.PriceCents }
	case enums.SortRating:
		less = func(a, b Product) bool { return a.Rating > b.Rating }
	case enums.SortNewest:
		less = func(a, b Product) bool { return a.ID > b.ID }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}
