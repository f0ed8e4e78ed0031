package catalog

import (
	"strconv"
	"time"

	"github.com/angelmondragon/storefront-backend/pkg/money"
	"github.com/angelmondragon/storefront-backend/pkg/navigation"
)

// ProductSummaryDTO is the product card payload.
type ProductSummaryDTO struct {
	ID                  int64    `json:"id"`
	Name                string   `json:"name"`
	PriceCents          int64    `json:"price_cents"`
	Price               string   `json:"price"`
	CompareAtPriceCents *int64   `json:"compare_at_price_cents,omitempty"`
	CompareAtPrice      *string  `json:"compare_at_price,omitempty"`
	Category            string   `json:"category"`
	Colors              []string `json:"colors"`
	Sizes               []string `json:"sizes"`
	Rating              int      `json:"rating"`
	FilledStars         int      `json:"filled_stars"`
	ReviewCount         int      `json:"review_count"`
	Badge               *Badge   `json:"badge,omitempty"`
	DiscountPercent     *int     `json:"discount_percent,omitempty"`
	InStock             bool     `json:"in_stock"`
	Link                string   `json:"link,omitempty"`
}

// PaginationDTO carries the page window and the "Showing a-b of n" indexes.
type PaginationDTO struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	StartIndex int `json:"start_index"`
	EndIndex   int `json:"end_index"`
}

// ProductListDTO is one page of product cards.
type ProductListDTO struct {
	Items      []ProductSummaryDTO `json:"items"`
	Pagination PaginationDTO       `json:"pagination"`
}

// ReviewDTO is a single review row.
type ReviewDTO struct {
	ID         int64     `json:"id"`
	Author     string    `json:"author"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Verified   bool      `json:"verified"`
	ReviewedOn time.Time `json:"reviewed_on"`
}

// RatingBucketDTO is one row of the rating breakdown.
type RatingBucketDTO struct {
	Stars   int `json:"stars"`
	Count   int `json:"count"`
	Percent int `json:"percent"`
}

// ProductDetailDTO is the single product page payload.
type ProductDetailDTO struct {
	ProductSummaryDTO
	Description        string            `json:"description"`
	StockCount         int               `json:"stock_count"`
	AverageRating      float64           `json:"average_rating"`
	Reviews            []ReviewDTO       `json:"reviews"`
	RatingDistribution []RatingBucketDTO `json:"rating_distribution"`
}

// CategoryCountDTO is a sidebar category entry.
type CategoryCountDTO struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
}

// FacetsDTO drives the filter sidebar.
type FacetsDTO struct {
	Categories    []CategoryCountDTO `json:"categories"`
	Colors        []string           `json:"colors"`
	Sizes         []string           `json:"sizes"`
	PriceMinCents int64              `json:"price_min_cents"`
	PriceMaxCents int64              `json:"price_max_cents"`
	PriceRange    string             `json:"price_range"`
}

// NewProductSummaryDTO renders a product card. nav may be nil, in which case no link is set.
func NewProductSummaryDTO(p Product, nav navigation.Navigator) ProductSummaryDTO {
	dto := ProductSummaryDTO{
		ID:              p.ID,
		Name:            p.Name,
		PriceCents:      int64(p.PriceCents),
		Price:           money.Format(p.PriceCents),
		Category:        p.Category.String(),
		Colors:          append([]string{}, p.Colors...),
		Sizes:           append([]string{}, p.Sizes...),
		Rating:          p.Rating,
		FilledStars:     FilledStars(float64(p.Rating)),
		ReviewCount:     p.ReviewCount,
		Badge:           p.Badge,
		DiscountPercent: p.DiscountPercent,
		InStock:         p.InStock,
	}
	if p.CompareAtPriceCents != nil {
		cents := int64(*p.CompareAtPriceCents)
		formatted := money.Format(*p.CompareAtPriceCents)
		dto.CompareAtPriceCents = &cents
		dto.CompareAtPrice = &formatted
	}
	if nav != nil {
		dto.Link = nav.Navigate(navigation.RouteProductSingle, strconv.FormatInt(p.ID, 10))
	}
	return dto
}

// NewProductListDTO renders a query result.
func NewProductListDTO(result PageResult, nav navigation.Navigator) ProductListDTO {
	items := make([]ProductSummaryDTO, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, NewProductSummaryDTO(p, nav))
	}
	return ProductListDTO{
		Items: items,
		Pagination: PaginationDTO{
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalItems: result.TotalMatched,
			TotalPages: result.TotalPages,
			StartIndex: result.StartIndex,
			EndIndex:   result.EndIndex,
		},
	}
}

// NewProductDetailDTO renders the single product page.
func NewProductDetailDTO(p Product, reviews []Review, nav navigation.Navigator) ProductDetailDTO {
	dto := ProductDetailDTO{
		ProductSummaryDTO: NewProductSummaryDTO(p, nav),
		Description:       p.Description,
		StockCount:        p.StockCount,
		AverageRating:     AverageRating(reviews),
		Reviews:           make([]ReviewDTO, 0, len(reviews)),
	}
	if len(reviews) > 0 {
		dto.FilledStars = FilledStars(dto.AverageRating)
	}
	for _, r := range reviews {
		dto.Reviews = append(dto.Reviews, ReviewDTO{
			ID:         r.ID,
			Author:     r.Author,
			Rating:     r.Rating,
			Comment:    r.Comment,
			Verified:   r.Verified,
			ReviewedOn: r.ReviewedOn,
		})
	}
	for _, b := range RatingDistribution(reviews) {
		dto.RatingDistribution = append(dto.RatingDistribution, RatingBucketDTO{
			Stars:   b.Stars,
			Count:   b.Count,
			Percent: b.Percent,
		})
	}
	return dto
}

// NewFacetsDTO renders sidebar facets.
func NewFacetsDTO(f Facets) FacetsDTO {
	dto := FacetsDTO{
		Categories:    make([]CategoryCountDTO, 0, len(f.Categories)),
		Colors:        append([]string{}, f.Colors...),
		Sizes:         append([]string{}, f.Sizes...),
		PriceMinCents: int64(f.MinPriceCents),
		PriceMaxCents: int64(f.MaxPriceCents),
		PriceRange:    money.FormatRange(f.MinPriceCents, f.MaxPriceCents),
	}
	for _, c := range f.Categories {
		dto.Categories = append(dto.Categories, CategoryCountDTO{
			Category: c.Category.String(),
			Label:    c.Label,
			Count:    c.Count,
		})
	}
	return dto
}
