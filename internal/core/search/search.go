// Package search holds the text primitives of the list filters: case-insensitive
// substring matching and Vietnamese name collation.
package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Blank reports whether term is empty or only whitespace.
func Blank(term string) bool {
	return strings.TrimSpace(term) == ""
}

// Matches reports whether term occurs in any of fields, ignoring case.
// A blank term matches everything.
func Matches(term string, fields ...string) bool {
	if Blank(term) {
		return true
	}
	needle := strings.ToLower(term)
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// SortByName stably orders items by the name key using Vietnamese collation.
// A collator is built per call since collate.Collator is not safe for concurrent use.
func SortByName[T any](items []T, name func(T) string) {
	c := collate.New(language.Vietnamese)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(items[i]), name(items[j])) < 0
	})
}
