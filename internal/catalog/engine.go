package catalog

import (
	"sort"
	"strings"

	"github.com/sagarmatha/storefront/pkg/enums"
)

// CategoryCount pairs a category value with the number of products in it.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Facets summarizes the catalog for the filter controls: per-category
// counts (with the "all" total first), distinct brands in lexicographic
// order, and distinct power labels in natural numeric-aware order.
type Facets struct {
	Categories   []CategoryCount `json:"categories"`
	Brands       []string        `json:"brands"`
	PowerRatings []string        `json:"powerRatings"`
}

// FilterProducts returns the products matching every constraint in spec,
// in the insertion order of the input. The input is never mutated.
func FilterProducts(products []Product, spec FilterSpec) []Product {
	search := strings.ToLower(strings.TrimSpace(spec.Search))

	matched := make([]Product, 0, len(products))
	for _, product := range products {
		if !matchesCategory(product, spec.Category) {
			continue
		}
		if len(spec.Brands) > 0 && !containsString(spec.Brands, product.Brand) {
			continue
		}
		if product.Price.Cmp(spec.PriceMin) < 0 || product.Price.Cmp(spec.PriceMax) > 0 {
			continue
		}
		if spec.Rating != 0 && product.Rating < spec.Rating {
			continue
		}
		if len(spec.Power) > 0 && !containsString(spec.Power, product.Power) {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(product.Name + " " + product.Brand + " " + product.Category.String())
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		matched = append(matched, product)
	}
	return matched
}

// SortProducts returns a sorted copy. The sort is stable: products with
// equal keys keep their relative input order, so identical inputs always
// produce identical output.
func SortProducts(products []Product, key enums.SortKey) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	switch key {
	case enums.SortKeyPriceLowHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.Cmp(sorted[j].Price) < 0
		})
	case enums.SortKeyPriceHighLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.Cmp(sorted[j].Price) > 0
		})
	case enums.SortKeyRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case enums.SortKeyNewest:
		// No timestamp exists on products; id is the recency proxy.
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ID > sorted[j].ID
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i], sorted[j]
			if wa, wb := badgeWeight(a), badgeWeight(b); wa != wb {
				return wa > wb
			}
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return a.Reviews > b.Reviews
		})
	}
	return sorted
}

// badgeWeight derives the featured-sort priority from promotional tags.
// The badge text and the boolean flags are checked independently.
func badgeWeight(p Product) int {
	switch {
	case p.Badge == "Best Seller" || p.IsBestSeller:
		return 3
	case p.Badge == "New" || p.IsNew:
		return 2
	case p.Discount > 0:
		return 1
	default:
		return 0
	}
}

// ComputeFacets derives the filter-control metadata from the catalog.
func ComputeFacets(products []Product) Facets {
	counts := make(map[enums.ProductCategory]int, len(validCategoryList()))
	brandSet := make(map[string]struct{})
	powerSet := make(map[string]struct{})

	for _, product := range products {
		counts[product.Category]++
		brandSet[product.Brand] = struct{}{}
		if product.Power != "" {
			powerSet[product.Power] = struct{}{}
		}
	}

	categories := make([]CategoryCount, 0, len(validCategoryList())+1)
	categories = append(categories, CategoryCount{Category: CategoryAll, Count: len(products)})
	for _, category := range validCategoryList() {
		categories = append(categories, CategoryCount{
			Category: category.String(),
			Count:    counts[category],
		})
	}

	brands := make([]string, 0, len(brandSet))
	for brand := range brandSet {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	powers := make([]string, 0, len(powerSet))
	for power := range powerSet {
		powers = append(powers, power)
	}
	sort.Slice(powers, func(i, j int) bool {
		return naturalLess(powers[i], powers[j])
	})

	return Facets{
		Categories:   categories,
		Brands:       brands,
		PowerRatings: powers,
	}
}

func validCategoryList() []enums.ProductCategory {
	return enums.ProductCategories()
}

func matchesCategory(product Product, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return product.Category.String() == category
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
