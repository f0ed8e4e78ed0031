package enums

import (
	"fmt"
	"strings"
)

// ProductCategory is the open set of storefront departments. Unknown values are
// tolerated on stored products; ParseProductCategory only accepts the known ones.
type ProductCategory string

const (
	ProductCategoryAll         ProductCategory = "all"
	ProductCategoryMen         ProductCategory = "men"
	ProductCategoryWomen       ProductCategory = "women"
	ProductCategoryKids        ProductCategory = "kids"
	ProductCategoryAccessories ProductCategory = "accessories"
	ProductCategoryUnisex      ProductCategory = "unisex"
)

var validProductCategories = []ProductCategory{
	ProductCategoryMen,
	ProductCategoryWomen,
	ProductCategoryKids,
	ProductCategoryAccessories,
	ProductCategoryUnisex,
}

var productCategoryLabels = map[ProductCategory]string{
	ProductCategoryAll:         "All Products",
	ProductCategoryMen:         "Men's Wear",
	ProductCategoryWomen:       "Women's Wear",
	ProductCategoryKids:        "Kids' Wear",
	ProductCategoryAccessories: "Accessories",
	ProductCategoryUnisex:      "Unisex",
}

// ProductCategories returns the known categories in display order.
func ProductCategories() []ProductCategory {
	out := make([]ProductCategory, len(validProductCategories))
	copy(out, validProductCategories)
	return out
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// Label returns the human readable department name.
func (c ProductCategory) Label() string {
	if label, ok := productCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// IsAll reports whether the category disables category filtering.
func (c ProductCategory) IsAll() bool {
	return c == "" || c == ProductCategoryAll
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory. "all" is accepted
// as the filter wildcard.
func ParseProductCategory(value string) (ProductCategory, error) {
	normalized := ProductCategory(strings.ToLower(strings.TrimSpace(value)))
	if normalized.IsAll() {
		return ProductCategoryAll, nil
	}
	for _, candidate := range validProductCategories {
		if candidate == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}

// BadgeType is the cosmetic tag rendered on product cards.
type BadgeType string

const (
	BadgeTypeHot  BadgeType = "hot"
	BadgeTypeNew  BadgeType = "new"
	BadgeTypeSale BadgeType = "sale"
	BadgeTypeSold BadgeType = "sold"
)

var validBadgeTypes = []BadgeType{
	BadgeTypeHot,
	BadgeTypeNew,
	BadgeTypeSale,
	BadgeTypeSold,
}

// String implements fmt.Stringer.
func (b BadgeType) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BadgeType.
func (b BadgeType) IsValid() bool {
	for _, candidate := range validBadgeTypes {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBadgeType converts raw input into a BadgeType.
func ParseBadgeType(value string) (BadgeType, error) {
	for _, candidate := range validBadgeTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid badge type %q", value)
}
