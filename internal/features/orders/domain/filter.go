package domain

import "shop-admin/internal/core/search"

// Criteria is the order list filter state.
type Criteria struct {
	// Status is empty for "all"; matched ignoring case.
	Status OrderStatus
	// CustomerName is matched as a case-insensitive substring.
	CustomerName string
}

// Filter keeps the orders matching c in their input order. It never modifies items.
func Filter(items []Order, c Criteria) []Order {
	want, _ := ParseStatus(string(c.Status))
	out := make([]Order, 0, len(items))
	for _, item := range items {
		if want != "" {
			got, _ := ParseStatus(string(item.Status))
			if got != want {
				continue
			}
		}
		if !search.Matches(c.CustomerName, item.Customer.FullName) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// View is an order annotated for display.
type View struct {
	Order
	StatusLabel        string        `json:"statusLabel"`
	StatusClass        string        `json:"statusClass"`
	PaymentStatusClass string        `json:"paymentStatusClass"`
	KnownStatus        bool          `json:"knownStatus"`
	NextStatuses       []OrderStatus `json:"nextStatuses"`
}

// Annotate builds the View of o.
func Annotate(o Order) View {
	next := NextStatuses(o.Status)
	if next == nil {
		next = []OrderStatus{}
	}
	return View{
		Order:              o,
		StatusLabel:        o.Status.Label(),
		StatusClass:        StatusClass(o.Status),
		PaymentStatusClass: PaymentStatusClass(o.Payment.Status),
		KnownStatus:        o.Status.Known(),
		NextStatuses:       next,
	}
}

// AnnotateAll builds the views of items.
func AnnotateAll(items []Order) []View {
	out := make([]View, len(items))
	for i, item := range items {
		out[i] = Annotate(item)
	}
	return out
}
