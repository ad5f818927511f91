package enums

import "fmt"

// SortKey represents the orderings the shop grid can request.
type SortKey string

const (
	SortKeyFeatured     SortKey = "featured"
	SortKeyPriceLowHigh SortKey = "price-low-high"
	SortKeyPriceHighLow SortKey = "price-high-low"
	SortKeyRating       SortKey = "rating"
	SortKeyNewest       SortKey = "newest"
)

var validSortKeys = []SortKey{
	SortKeyFeatured,
	SortKeyPriceLowHigh,
	SortKeyPriceHighLow,
	SortKeyRating,
	SortKeyNewest,
}

// String implements fmt.Stringer.
func (s SortKey) String() string {
	return string(s)
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

// ParseSortKey converts raw input into a SortKey.
func ParseSortKey(value string) (SortKey, error) {
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
