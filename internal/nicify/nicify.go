// Package nicify converts identifier-style type names into human-readable
// display labels.
package nicify

import (
	"strings"
	"unicode"
)

// StripArity removes a generic-arity suffix from a raw type name.
// Both backquote arity markers ("List`1") and bracketed parameter
// lists ("List[T]") are recognized. The result is trimmed of
// trailing whitespace.
func StripArity(name string) string {
	if i := strings.IndexByte(name, '`'); i >= 0 {
		name = name[:i]
	}
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return strings.TrimRight(name, " ")
}

// Name converts a raw identifier into a display label. The generic
// arity suffix is stripped, then a space is inserted before each
// upper-case letter that follows a lower-case letter or digit. Runs
// of consecutive capitals are kept together as an acronym, with a
// space inserted before the final capital of the run when it begins
// a new word ("HTTPServer" becomes "HTTP Server").
//
// The transformation is deterministic: the same input always yields
// the same label.
func Name(name string) string {
	name = StripArity(name)
	if name == "" {
		return ""
	}

	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				// camelCase boundary
				b.WriteByte(' ')
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// end of an acronym run
				b.WriteByte(' ')
			}
		}
		if r == '_' {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}
