package coerce

import "strings"

// Sanitize strips everything from s except ASCII digits and '.', keeping a
// '-' only when it is the first byte. Thousands separators, currency
// symbols and whitespace are dropped without notice.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i, c := range s {
		switch {
		case c >= '0' && c <= '9', c == '.':
			b.WriteRune(c)
		case c == '-' && i == 0:
			b.WriteRune(c)
		}
	}

	return b.String()
}
