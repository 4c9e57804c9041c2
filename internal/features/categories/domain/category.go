package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"shop-admin/internal/core/apperr"
)

const (
	// NameMinLength is the shortest accepted category name, after trimming.
	NameMinLength = 2
	// NameMaxLength is the longest accepted category name, after trimming.
	NameMaxLength = 100
)

// Category groups products. Name uniqueness is enforced by the backend only.
type Category struct {
	// ID is assigned by the backend; empty until persisted.
	ID string `json:"id,omitempty"`
	// Name is the display name.
	Name string `json:"name"`
	// Description is optional free text.
	Description string `json:"description,omitempty"`
	// Active is nil when the backend omitted the flag.
	Active *bool `json:"active,omitempty"`
	// CreatedAt is nil when unknown.
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	// UpdatedAt is nil when unknown.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	// ProductCount is derived by the backend.
	ProductCount int `json:"productCount"`
}

// EntityID implements collection.Entity.
func (c Category) EntityID() string { return c.ID }

// IsActive reports whether the active flag is set and true.
func (c Category) IsActive() bool { return c.Active != nil && *c.Active }

// Input is the create/update payload.
type Input struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

// Normalize trims the free-text fields.
func (in Input) Normalize() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

// Validate checks the name bounds without contacting the backend.
func (in Input) Validate() error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return apperr.Invalid("name", "category name must not be empty")
	}
	if !ValidName(name) {
		return apperr.Invalid("name", "category name must be between 2 and 100 characters")
	}
	return nil
}

// ValidName reports whether the trimmed name length is within bounds.
func ValidName(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n >= NameMinLength && n <= NameMaxLength
}
