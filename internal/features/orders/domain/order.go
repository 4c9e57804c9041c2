package domain

import (
	"time"
)

// Order is a placed customer order. Items, customer and address are snapshots
// taken when the order was placed; later catalog edits never change them.
type Order struct {
	// ID is the backend identifier.
	ID string `json:"id"`
	// OrderNumber is the human-facing order reference.
	OrderNumber string `json:"orderNumber"`
	// Customer is the buyer's contact snapshot.
	Customer Customer `json:"customer"`
	// ShippingAddress is the delivery address snapshot.
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	// Items are the purchased lines in checkout order.
	Items []OrderItem `json:"items"`
	// Payment holds the payment method and its status.
	Payment Payment `json:"payment"`
	// ProductInfo are free-form title/content notes attached at checkout.
	ProductInfo []ProductInfo `json:"productInfo,omitempty"`
	// Subtotal is the sum of the item subtotals.
	Subtotal float64 `json:"subtotal"`
	// DiscountTotal is the total discount applied.
	DiscountTotal float64 `json:"discountTotal"`
	// ShippingFee is the delivery charge.
	ShippingFee float64 `json:"shippingFee"`
	// Total is the amount charged.
	Total float64 `json:"total"`
	// Status is kept as sent by the backend, known or not.
	Status OrderStatus `json:"status"`
	// OrderDate is when the order was placed.
	OrderDate *time.Time `json:"orderDate,omitempty"`
	// UpdatedAt is the last modification time.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// EntityID implements collection.Entity.
func (o Order) EntityID() string { return o.ID }

// ItemCount sums the quantities of every line.
func (o Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// Customer is the buyer's contact snapshot.
type Customer struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// ShippingAddress is a Vietnamese delivery address.
type ShippingAddress struct {
	Province      string `json:"province"`
	District      string `json:"district"`
	Ward          string `json:"ward"`
	StreetAddress string `json:"streetAddress"`
}

// Payment holds the payment method and its status.
type Payment struct {
	Method string `json:"method"`
	Status string `json:"status"`
}

// ProductInfo is a title/content note attached to an order.
type ProductInfo struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// OrderItem is a purchased line, frozen at checkout.
type OrderItem struct {
	// ProductID refers to the product at checkout time; it may no longer exist.
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	BasePrice   float64 `json:"basePrice"`

	VariantName            string       `json:"variantName"`
	VariantSpecs           VariantSpecs `json:"variantSpecs"`
	VariantPrice           float64      `json:"variantPrice"`
	VariantDiscountPercent float64      `json:"variantDiscountPercent"`

	ColorName               string  `json:"colorName"`
	ColorCode               string  `json:"colorCode"`
	ColorPriceAdjustment    float64 `json:"colorPriceAdjustment"`
	ColorDiscountAdjustment float64 `json:"colorDiscountAdjustment"`

	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Subtotal        float64 `json:"subtotal"`
	ThumbnailURL    string  `json:"thumbnailUrl"`
}

// VariantSpecs are the technical specs of the purchased variant.
type VariantSpecs struct {
	CPU     string   `json:"cpu,omitempty"`
	RAM     string   `json:"ram,omitempty"`
	Storage string   `json:"storage,omitempty"`
	Display string   `json:"display,omitempty"`
	GPU     string   `json:"gpu,omitempty"`
	Battery string   `json:"battery,omitempty"`
	OS      string   `json:"os,omitempty"`
	Ports   []string `json:"ports,omitempty"`
}

// Stats are the order counts per status reported by the backend.
type Stats struct {
	TotalCount      int `json:"totalCount"`
	PendingCount    int `json:"pendingCount"`
	ConfirmedCount  int `json:"confirmedCount"`
	ProcessingCount int `json:"processingCount"`
	ShippingCount   int `json:"shippingCount"`
	DeliveredCount  int `json:"deliveredCount"`
	CancelledCount  int `json:"cancelledCount"`
}
