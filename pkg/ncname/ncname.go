// Package ncname validates, repairs, and generates XML non-colonized names
// for use as xml:id values.
package ncname

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ewhalen/mxml_marks"
)

// Valid reports whether s can serve as an xsd:ID value.
func Valid(s string) bool {
	return mxml_marks.IsValidXSDID(s)
}

// Sanitize coerces s into a valid NCName. Out-of-grammar runes become
// underscores and a leading non-letter gains an underscore prefix; an empty
// input yields a generated name.
func Sanitize(s string) string {
	if s == "" {
		return New()
	}
	var builder strings.Builder
	builder.Grow(len(s) + 1)
	for idx, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_':
			builder.WriteRune(r)
		case idx > 0 && (r >= '0' && r <= '9' || r == '-' || r == '.'):
			builder.WriteRune(r)
		case idx == 0:
			builder.WriteByte('_')
			if r >= '0' && r <= '9' || r == '-' || r == '.' {
				builder.WriteRune(r)
			}
		default:
			builder.WriteByte('_')
		}
	}
	return builder.String()
}

// New generates a fresh NCName from a random UUID. The letter prefix keeps
// digit-leading UUIDs valid.
func New() string {
	return "m" + uuid.New().String()
}
