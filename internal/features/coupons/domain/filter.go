package domain

import (
	"time"

	"shop-admin/internal/core/search"
)

// Criteria is the coupon list filter state.
type Criteria struct {
	Search string
	// Active is nil for "all".
	Active *bool
	// Type is empty for "all".
	Type Type
	// Status is empty for "all"; it is matched against the status resolved at filter time.
	Status Status
}

// Filter annotates the coupons at now and keeps those matching c, in their
// input order. It never modifies items.
func Filter(items []Coupon, c Criteria, now time.Time) []View {
	out := make([]View, 0, len(items))
	for _, item := range items {
		if !search.Matches(c.Search, item.Code, item.Name, item.Description) {
			continue
		}
		if c.Active != nil && (item.Active == nil || *item.Active != *c.Active) {
			continue
		}
		if c.Type != "" && item.Type != c.Type {
			continue
		}
		view := Annotate(item, now)
		if c.Status != "" && view.Status != c.Status {
			continue
		}
		out = append(out, view)
	}
	return out
}
