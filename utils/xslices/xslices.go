package xslices

// Search returns the index of the first element in s that satisfies f, or -1 if no such element exists.
// It returns a boolean indicating whether the element was found.
func Search[T any](s []T, f func(T) bool) (int, bool) {
	for i, v := range s {
		if f(v) {
			return i, true
		}
	}
	return -1, false
}
