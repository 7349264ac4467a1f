package common

// At returns the element at index i and true, or the zero value and false
// when i is out of range.
func At[S ~[]E, E any](s S, i int) (E, bool) {
	if i < 0 || i >= len(s) {
		var zero E
		return zero, false
	}

	return s[i], true
}

// Resize returns s cut or padded with zero values so that len == n.
// The second result reports the original length compared to n:
// -1 when s was shorter, 1 when longer, 0 when equal.
func Resize[S ~[]E, E any](s S, n int) (S, int) {
	switch {
	case len(s) < n:
		out := make(S, n)
		copy(out, s)

		return out, -1
	case len(s) > n:
		return s[:n:n], 1
	default:
		return s, 0
	}
}
