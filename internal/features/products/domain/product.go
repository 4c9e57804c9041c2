package domain

import (
	"math"
	"regexp"
	"strings"
	"time"

	"shop-admin/internal/core/apperr"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Product is a catalog item. It owns its variants; categories are referenced by id.
type Product struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	SKU         string     `json:"sku,omitempty"`
	Active      *bool      `json:"active,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	CategoryIDs []string   `json:"categoryIds,omitempty"`
	// CategoryNames is filled by the backend for display.
	CategoryNames []string  `json:"categoryNames,omitempty"`
	Variants      []Variant `json:"variants,omitempty"`
	VariantCount  int       `json:"variantCount,omitempty"`
	Tags          []Tag     `json:"tags,omitempty"`
}

// EntityID implements collection.Entity.
func (p Product) EntityID() string { return p.ID }

// IsActive reports whether the active flag is set and true.
func (p Product) IsActive() bool { return p.Active != nil && *p.Active }

// InCategory reports whether the product is associated with categoryID.
func (p Product) InCategory(categoryID string) bool {
	for _, id := range p.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// Stock sums the stock of every variant.
func (p Product) Stock() int {
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}

// Variant is a purchasable flavour of a product.
type Variant struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Color          string `json:"color,omitempty"`
	Size           string `json:"size,omitempty"`
	Material       string `json:"material,omitempty"`
	Specifications string `json:"specifications,omitempty"`
	SKU            string `json:"sku,omitempty"`
	// AdditionalPrice is added to the parent product price.
	AdditionalPrice float64    `json:"additionalPrice,omitempty"`
	Stock           int        `json:"stock,omitempty"`
	Active          *bool      `json:"active,omitempty"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
	// ProductID and ProductName point back at the owner for display only.
	ProductID   string `json:"productId,omitempty"`
	ProductName string `json:"productName,omitempty"`
}

// EntityID implements collection.Entity.
func (v Variant) EntityID() string { return v.ID }

// Tag is a promotional marker such as "discount", "hot", "new", "bestseller" or "featured".
type Tag struct {
	Type   string `json:"type"`
	Value  string `json:"value,omitempty"`
	Color  string `json:"color,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// Input is the create/update payload of a product.
type Input struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	SKU         string    `json:"sku,omitempty"`
	Active      *bool     `json:"active,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CategoryIDs []string  `json:"categoryIds,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
	Tags        []Tag     `json:"tags,omitempty"`
}

// Normalize trims the free-text fields.
func (in Input) Normalize() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.SKU = strings.TrimSpace(in.SKU)
	return in
}

// Validate checks the required fields and, when set, the SKU format.
// Price is passed through as entered.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.Invalid("name", "product name must not be empty")
	}
	if sku := strings.TrimSpace(in.SKU); sku != "" && !ValidSKU(sku) {
		return apperr.Invalid("sku", "SKU must be 3 to 20 upper-case letters or digits")
	}
	return nil
}

// VariantInput is the create/update payload of a variant.
type VariantInput struct {
	Name            string  `json:"name"`
	Color           string  `json:"color,omitempty"`
	Size            string  `json:"size,omitempty"`
	Material        string  `json:"material,omitempty"`
	Specifications  string  `json:"specifications,omitempty"`
	SKU             string  `json:"sku,omitempty"`
	AdditionalPrice float64 `json:"additionalPrice,omitempty"`
	Stock           int     `json:"stock,omitempty"`
	Active          *bool   `json:"active,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
}

// Normalize trims the name and SKU.
func (in VariantInput) Normalize() VariantInput {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	return in
}

// Validate checks the required fields.
func (in VariantInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.Invalid("name", "variant name must not be empty")
	}
	if in.Stock < 0 {
		return apperr.Invalid("stock", "stock must not be negative")
	}
	return nil
}

var skuPattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// ValidSKU reports whether sku is 3 to 20 upper-case letters or digits.
func ValidSKU(sku string) bool {
	return len(sku) >= 3 && len(sku) <= 20 && skuPattern.MatchString(sku)
}

var vnd = message.NewPrinter(language.Vietnamese)

// FormatCurrency renders a whole-dong amount, e.g. 1234567 -> "1.234.567đ".
func FormatCurrency(amount float64) string {
	return vnd.Sprintf("%d", int64(math.Round(amount))) + "đ"
}
