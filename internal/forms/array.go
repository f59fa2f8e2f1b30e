package forms

// Append returns a new slice holding items followed by empty.
func Append[T any](items []T, empty T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, empty)
}

// RemoveAt returns a new slice without the element at i.
// An out-of-range index returns items unchanged.
func RemoveAt[T any](items []T, i int) []T {
	if i < 0 || i >= len(items) {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

// ReplaceAt returns a new slice with the element at i set to v.
// An out-of-range index returns items unchanged.
func ReplaceAt[T any](items []T, i int, v T) []T {
	if i < 0 || i >= len(items) {
		return items
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i] = v
	return out
}

// compact returns the normalized items that are not blank after normalization.
// The result is never nil.
func compact[T any](items []T, normalize func(T) T, blank func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		it = normalize(it)
		if !blank(it) {
			out = append(out, it)
		}
	}
	return out
}
