package services

import (
	"strings"
	"unicode"
)

// NormalizeColumnName converts a raw column header into its canonical
// lowercase-underscore form: surrounding whitespace is trimmed, runs of
// non-alphanumeric characters become a single underscore, and letters are
// lowercased. The transform is idempotent, so an already-canonical name
// passes through unchanged.
func NormalizeColumnName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	pendingSep := false
	for _, r := range strings.TrimSpace(raw) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pendingSep = true
	}

	return b.String()
}

// NormalizeColumnNames normalizes every header in place order, returning a new slice.
func NormalizeColumnNames(raw []string) []string {
	out := make([]string, len(raw))
	for i, name := range raw {
		out[i] = NormalizeColumnName(name)
	}
	return out
}
