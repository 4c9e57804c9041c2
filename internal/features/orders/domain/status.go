package domain

import "strings"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	// OrderStatusPending is a placed order awaiting confirmation.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed is accepted by the shop.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusProcessing is being prepared.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipping is handed to the carrier.
	OrderStatusShipping OrderStatus = "shipping"
	// OrderStatusDelivered is received by the customer. Terminal.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled is abandoned. Terminal.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Statuses lists the known states in fulfilment order.
var Statuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipping,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseStatus maps s to a known status, ignoring case and surrounding space.
func ParseStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Statuses {
		if st == known {
			return st, true
		}
	}
	return st, false
}

// Known reports whether s is one of the known states, ignoring case.
func (s OrderStatus) Known() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

// Terminal reports whether no further transition is expected.
func (s OrderStatus) Terminal() bool {
	st, _ := ParseStatus(string(s))
	return st == OrderStatusDelivered || st == OrderStatusCancelled
}

var forward = map[OrderStatus]OrderStatus{
	OrderStatusPending:    OrderStatusConfirmed,
	OrderStatusConfirmed:  OrderStatusProcessing,
	OrderStatusProcessing: OrderStatusShipping,
	OrderStatusShipping:   OrderStatusDelivered,
}

// NextStatuses lists the intended successors of s: the next fulfilment step,
// then cancellation. Terminal and unknown states have none.
func NextStatuses(s OrderStatus) []OrderStatus {
	st, ok := ParseStatus(string(s))
	if !ok || st.Terminal() {
		return nil
	}
	return []OrderStatus{forward[st], OrderStatusCancelled}
}

// CanTransition reports whether moving from one state to the other follows the
// intended flow. Updates are not rejected on this basis.
func CanTransition(from, to OrderStatus) bool {
	target, ok := ParseStatus(string(to))
	if !ok {
		return false
	}
	for _, next := range NextStatuses(from) {
		if next == target {
			return true
		}
	}
	return false
}

// StatusClass is the display class of an order status; unknown values get "".
func StatusClass(s OrderStatus) string {
	st, ok := ParseStatus(string(s))
	if !ok {
		return ""
	}
	return "status-" + string(st)
}

// PaymentStatusClass is the display class of a payment status; unknown values get "".
func PaymentStatusClass(status string) string {
	switch st := strings.ToLower(strings.TrimSpace(status)); st {
	case "pending", "paid", "failed":
		return "payment-" + st
	default:
		return ""
	}
}

// Label is the Vietnamese display text of a status; unknown values are shown as sent.
func (s OrderStatus) Label() string {
	st, _ := ParseStatus(string(s))
	switch st {
	case OrderStatusPending:
		return "Chờ xác nhận"
	case OrderStatusConfirmed:
		return "Đã xác nhận"
	case OrderStatusProcessing:
		return "Đang xử lý"
	case OrderStatusShipping:
		return "Đang giao hàng"
	case OrderStatusDelivered:
		return "Đã giao hàng"
	case OrderStatusCancelled:
		return "Đã hủy"
	default:
		return string(s)
	}
}
