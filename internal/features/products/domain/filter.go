package domain

import "shop-admin/internal/core/search"

// Criteria is the product list filter state.
type Criteria struct {
	Search string
	// Active is nil for "all".
	Active *bool
	// CategoryID is empty for "all".
	CategoryID string
}

// Filter derives the visible products in their input order. It never modifies items.
func Filter(items []Product, c Criteria) []Product {
	out := make([]Product, 0, len(items))
	for _, item := range items {
		if !search.Matches(c.Search, item.Name, item.Description, item.SKU) {
			continue
		}
		if c.Active != nil && (item.Active == nil || *item.Active != *c.Active) {
			continue
		}
		if c.CategoryID != "" && !item.InCategory(c.CategoryID) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Tagged keeps the products carrying an active tag of the given type, e.g. "featured".
func Tagged(items []Product, tagType string) []Product {
	out := make([]Product, 0, len(items))
	for _, item := range items {
		for _, tag := range item.Tags {
			if tag.Type == tagType && (tag.Active == nil || *tag.Active) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
