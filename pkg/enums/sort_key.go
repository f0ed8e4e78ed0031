package enums

import (
	"fmt"
	"strings"
)

// SortKey selects the ordering applied to catalog results.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

var validSortKeys = []SortKey{
	SortFeatured,
	SortPriceLow,
	SortPriceHigh,
	SortRating,
	SortNewest,
}

var sortKeyLabels = map[SortKey]string{
	SortFeatured:  "Featured",
	SortPriceLow:  "Price: Low to High",
	SortPriceHigh: "Price: High to Low",
	SortRating:    "Customer Rating",
	SortNewest:    "Newest First",
}

// SortKeys returns the supported sort keys in display order.
func SortKeys() []SortKey {
	out := make([]SortKey, len(validSortKeys))
	copy(out, validSortKeys)
	return out
}

// String implements fmt.Stringer.
func (s SortKey) String() string {
	return string(s)
}

// Label returns the option text shown in the sort dropdown.
func (s SortKey) Label() string {
	return sortKeyLabels[s]
}

// IsValid reports whether the value is a known SortKey.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey; empty input means featured.
func ParseSortKey(value string) (SortKey, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return SortFeatured, nil
	}
	for _, candidate := range validSortKeys {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
