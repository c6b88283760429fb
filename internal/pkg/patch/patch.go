package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceSlice replaces the whole slice when a new one was supplied.
// A non-nil empty slice clears the field.
func CoalesceSlice[T any](next []T, fallback []T) []T {
	if next != nil {
		return append([]T(nil), next...)
	}
	return fallback
}

// MergeMap overlays next on top of base; nil next leaves base untouched.
func MergeMap[K comparable, V any](base, next map[K]V) map[K]V {
	if next == nil {
		return base
	}
	out := make(map[K]V, len(base)+len(next))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range next {
		out[k] = v
	}
	return out
}
