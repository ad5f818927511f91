package catalog

import (
	"strings"

	"github.com/sagarmatha/storefront/pkg/enums"
	"github.com/shopspring/decimal"
)

// CategoryAll is the filter sentinel matching every product category.
const CategoryAll = "all"

// Default price window offered by the shop filters.
var (
	DefaultPriceMin = decimal.Zero
	DefaultPriceMax = decimal.NewFromInt(20000)
)

// Product is a catalog record. The collection is loaded once at startup and
// never mutated afterwards; wishlist snapshots copy the value as-is.
//
// Badge, IsNew, and IsBestSeller are deliberately redundant: the featured
// sort checks the badge text and the flags independently, so the loader must
// not unify them.
type Product struct {
	ID            int                   `json:"id" validate:"required,gt=0"`
	Name          string                `json:"name" validate:"required"`
	Brand         string                `json:"brand" validate:"required"`
	Price         decimal.Decimal       `json:"price"`
	OriginalPrice decimal.Decimal       `json:"originalPrice"`
	Rating        float64               `json:"rating" validate:"gte=0,lte=5"`
	Reviews       int                   `json:"reviews" validate:"gte=0"`
	Power         string                `json:"power"`
	Category      enums.ProductCategory `json:"category" validate:"required,oneof=tools electrical lighting"`
	Image         string                `json:"image"`
	Discount      int                   `json:"discount" validate:"gte=0,lte=100"`
	Description   string                `json:"description"`
	Features      []string              `json:"features"`
	InStock       bool                  `json:"inStock"`
	Badge         string                `json:"badge"`
	IsNew         bool                  `json:"isNew,omitempty"`
	IsBestSeller  bool                  `json:"isBestSeller,omitempty"`
	Gallery       []string              `json:"gallery,omitempty"`
}

// FilterSpec is the combined set of user-selected constraints applied to
// the catalog. Construct with DefaultFilterSpec and adjust fields; the
// engine applies the bounds exactly as given (an inverted price range is
// passed through and naturally matches nothing).
type FilterSpec struct {
	Category string
	Brands   []string
	PriceMin decimal.Decimal
	PriceMax decimal.Decimal
	Rating   float64
	Power    []string
	Search   string
}

// DefaultFilterSpec returns the documented "clear all" state: every
// category, no brand or power constraint, price in [0, 20000], no rating
// floor, empty search.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		Category: CategoryAll,
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
	}
}

// ParsePriceBound converts free-text bound input into a decimal, falling
// back to the provided extreme when the text is blank or unparsable. This
// keeps malformed bounds from silently excluding every product.
func ParsePriceBound(raw string, fallback decimal.Decimal) decimal.Decimal {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return fallback
	}
	return value
}
