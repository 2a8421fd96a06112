package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// Clone returns a pointer to a copy of *ptr, or nil when ptr is nil.
func Clone[T any](ptr *T) *T {
	if ptr == nil {
		return nil
	}
	return Ptr(*ptr)
}
