// Package collection reconciles locally held entity lists with backend answers.
//
// Every function takes the current collection and returns a new one; inputs are
// never modified, so a snapshot handed to a reader stays valid after a mutation.
package collection

// Entity is anything the backend identifies by id.
type Entity interface {
	EntityID() string
}

// IndexOf returns the position of the entity with the given id, or -1.
func IndexOf[T Entity](items []T, id string) int {
	for i, item := range items {
		if item.EntityID() == id {
			return i
		}
	}
	return -1
}

// Find returns the entity with the given id.
func Find[T Entity](items []T, id string) (T, bool) {
	if i := IndexOf(items, id); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// Append returns a copy of items with item added at the end.
func Append[T any](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

// Replace returns a copy of items where the entry sharing item's id is swapped
// for item, keeping its position. The boolean is false when no entry matched,
// in which case items is returned unchanged.
func Replace[T Entity](items []T, item T) ([]T, bool) {
	i := IndexOf(items, item.EntityID())
	if i < 0 {
		return items, false
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i] = item
	return out, true
}

// Remove returns a copy of items without the entries whose id matches.
// The boolean reports whether anything was removed.
func Remove[T Entity](items []T, id string) ([]T, bool) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.EntityID() != id {
			out = append(out, item)
		}
	}
	if len(out) == len(items) {
		return items, false
	}
	return out, true
}
