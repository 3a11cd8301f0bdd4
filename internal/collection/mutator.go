// Package collection mutates ordered sub-collections embedded in a parent document.
//
// Entries are always inserted at the head, so the most recent entry comes first, and they are
// always removed by key equality. Callers never pass positional indexes.
package collection

// PushFront prepends item and returns the new collection and its length.
func PushFront[T any](items []T, item T) ([]T, int) {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	out = append(out, items...)
	return out, len(out)
}

// IndexFunc returns the index of the first element matching pred, or -1.
func IndexFunc[T any](items []T, pred func(T) bool) int {
	for i, item := range items {
		if pred(item) {
			return i
		}
	}
	return -1
}

// RemoveFirst removes the first element matching pred. When nothing matches, the input is
// returned unchanged with removed=false.
func RemoveFirst[T any](items []T, pred func(T) bool) ([]T, bool) {
	idx := IndexFunc(items, pred)
	if idx < 0 {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	out = append(out, items[idx+1:]...)
	return out, true
}

// Policy describes one kind of embedded collection.
type Policy[T any] struct {
	// Key extracts the identity an entry is matched by.
	Key func(T) string
	// RejectDuplicates makes Add fail with Duplicate when the key is already present.
	RejectDuplicates bool
	Duplicate        error
	// Missing is returned by Remove and Find when no entry has the key.
	Missing error
}

// Find returns the entry with the given key.
func (p Policy[T]) Find(items []T, key string) (T, error) {
	idx := IndexFunc(items, p.matches(key))
	if idx < 0 {
		var zero T
		return zero, p.Missing
	}
	return items[idx], nil
}

// Contains reports whether an entry with the key exists.
func (p Policy[T]) Contains(items []T, key string) bool {
	return IndexFunc(items, p.matches(key)) >= 0
}

// Add inserts item at the head of items.
func (p Policy[T]) Add(items []T, item T) ([]T, error) {
	if p.RejectDuplicates && p.Contains(items, p.Key(item)) {
		return items, p.Duplicate
	}
	out, _ := PushFront(items, item)
	return out, nil
}

// Remove deletes the first entry with the key, keeping the relative order of the others.
func (p Policy[T]) Remove(items []T, key string) ([]T, error) {
	out, removed := RemoveFirst(items, p.matches(key))
	if !removed {
		return items, p.Missing
	}
	return out, nil
}

func (p Policy[T]) matches(key string) func(T) bool {
	return func(item T) bool {
		return p.Key(item) == key
	}
}
