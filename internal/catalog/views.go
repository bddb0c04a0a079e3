// Package catalog holds the read-only projections of the deals collection:
// filters, search, sort orders and the price arithmetic shown on deal cards.
// Every function is pure and returns a new slice.
package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/dealspro/dealspro_api/internal/models"
)

// SortKey selects a deal ordering.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortDiscount  SortKey = "discount"
)

// AllCategories is the pseudo-category that disables category filtering.
const AllCategories = "All"

// ParseSortKey maps a raw query value to a SortKey; unknown or empty values
// fall back to SortNewest.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortPriceLow, SortPriceHigh, SortDiscount, SortNewest:
		return k
	}
	return SortNewest
}

// Active returns the deals flagged active.
func Active(deals []models.Deal) []models.Deal {
	return filter(deals, func(d models.Deal) bool { return d.IsActive })
}

// ByCategory returns the active deals of category. An empty category or
// AllCategories returns every active deal.
func ByCategory(deals []models.Deal, category string) []models.Deal {
	if category == "" || category == AllCategories {
		return Active(deals)
	}
	return filter(deals, func(d models.Deal) bool {
		return d.IsActive && d.Category == category
	})
}

// ByStore returns the deals of store. An empty store keeps every deal.
func ByStore(deals []models.Deal, store models.Store) []models.Deal {
	if store == "" {
		return append([]models.Deal{}, deals...)
	}
	return filter(deals, func(d models.Deal) bool { return d.Store == store })
}

// Search returns the active deals whose title, description or category
// contains query, case-insensitively. A blank query matches nothing.
func Search(deals []models.Deal, query string) []models.Deal {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.Deal{}
	}
	return filter(deals, func(d models.Deal) bool {
		if !d.IsActive {
			return false
		}
		return strings.Contains(strings.ToLower(d.Title), q) ||
			strings.Contains(strings.ToLower(d.Description), q) ||
			strings.Contains(strings.ToLower(d.Category), q)
	})
}

// SortBy returns a stably sorted copy of deals.
func SortBy(deals []models.Deal, key SortKey) []models.Deal {
	out := append([]models.Deal{}, deals...)

	var less func(a, b models.Deal) bool
	switch key {
	case SortPriceLow:
		less = func(a, b models.Deal) bool { return a.CurrentPrice < b.CurrentPrice }
	case SortPriceHigh:
		less = func(a, b models.Deal) bool { return a.CurrentPrice > b.CurrentPrice }
	case SortDiscount:
		less = func(a, b models.Deal) bool { return discountRatio(a) > discountRatio(b) }
	default:
		less = func(a, b models.Deal) bool { return a.CreatedAt.After(b.CreatedAt) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// discountRatio is (original-current)/original, clamped to 0 when the
// original price is not positive or not above the current price.
func discountRatio(d models.Deal) float64 {
	if d.OriginalPrice <= 0 || d.OriginalPrice <= d.CurrentPrice {
		return 0
	}
	return (d.OriginalPrice - d.CurrentPrice) / d.OriginalPrice
}

// DiscountPercent is the rounded whole-number discount, e.g. 999 off 3799 -> 74.
func DiscountPercent(d models.Deal) int {
	return int(math.Round(100 * discountRatio(d)))
}

// Savings is originalPrice - currentPrice, or 0 under the same clamp as DiscountPercent.
func Savings(d models.Deal) float64 {
	if discountRatio(d) == 0 {
		return 0
	}
	return d.OriginalPrice - d.CurrentPrice
}

// Stats summarises the collection for the admin dashboard.
type Stats struct {
	TotalDeals  int `json:"totalDeals"`
	ActiveDeals int `json:"activeDeals"`
	Categories  int `json:"categories"`
}

// Summarise counts total and active deals against the category suggestion list.
func Summarise(deals []models.Deal) Stats {
	return Stats{
		TotalDeals:  len(deals),
		ActiveDeals: len(Active(deals)),
		Categories:  len(models.DealCategories),
	}
}

// CategoryCounts returns the number of active deals per suggested category,
// plus AllCategories for the total.
func CategoryCounts(deals []models.Deal) map[string]int {
	active := Active(deals)
	counts := map[string]int{AllCategories: len(active)}
	for _, c := range models.DealCategories {
		counts[c] = 0
	}
	for _, d := range active {
		counts[d.Category]++
	}
	return counts
}

func filter(deals []models.Deal, keep func(models.Deal) bool) []models.Deal {
	out := make([]models.Deal, 0, len(deals))
	for _, d := range deals {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}
