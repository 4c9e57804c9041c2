package domain

import (
	"sort"
	"time"

	"shop-admin/internal/core/search"
)

// SortKey selects the ordering of a category view.
type SortKey string

const (
	// SortNone keeps the backend order.
	SortNone SortKey = ""
	// SortByName orders by name with Vietnamese collation.
	SortByName SortKey = "name"
	// SortByProductCount orders by product count, largest first.
	SortByProductCount SortKey = "productCount"
	// SortByCreatedAt orders by creation time, newest first.
	SortByCreatedAt SortKey = "createdAt"
)

// ParseSortKey maps a query value to a SortKey; unknown values keep the backend order.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByName, SortByProductCount, SortByCreatedAt:
		return SortKey(s)
	default:
		return SortNone
	}
}

// Criteria is the category list filter state.
type Criteria struct {
	Search string
	// Active is nil for "all".
	Active *bool
	Sort   SortKey
}

// Filter derives the visible categories. It never modifies items.
func Filter(items []Category, c Criteria) []Category {
	out := make([]Category, 0, len(items))
	for _, item := range items {
		if !search.Matches(c.Search, item.Name, item.Description) {
			continue
		}
		if c.Active != nil && (item.Active == nil || *item.Active != *c.Active) {
			continue
		}
		out = append(out, item)
	}

	switch c.Sort {
	case SortByName:
		search.SortByName(out, func(c Category) string { return c.Name })
	case SortByProductCount:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ProductCount > out[j].ProductCount
		})
	case SortByCreatedAt:
		sort.SliceStable(out, func(i, j int) bool {
			return createdAt(out[i]).After(createdAt(out[j]))
		})
	}
	return out
}

// WithProducts keeps the categories that hold at least one product.
func WithProducts(items []Category) []Category {
	out := make([]Category, 0, len(items))
	for _, item := range items {
		if item.ProductCount > 0 {
			out = append(out, item)
		}
	}
	return out
}

func createdAt(c Category) time.Time {
	if c.CreatedAt == nil {
		return time.Unix(0, 0)
	}
	return *c.CreatedAt
}
