package typetree

import (
	"strings"

	"github.com/dshills/typepick/internal/catalog"
)

// Filter narrows a descriptor list by a case-insensitive substring
// match against each descriptor's fully-qualified name.
//
// An empty or all-whitespace query returns the input unchanged.
// Descriptors that are nil or have no resolvable full name are
// excluded from a non-empty match. Filter is pure and idempotent:
// filtering an already-filtered list with the same query returns the
// same set.
func Filter(descriptors []*catalog.Descriptor, query string) []*catalog.Descriptor {
	if strings.TrimSpace(query) == "" {
		return descriptors
	}

	query = strings.ToLower(query)
	result := make([]*catalog.Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if d == nil || d.FullName == "" {
			continue
		}
		if strings.Contains(strings.ToLower(d.FullName), query) {
			result = append(result, d)
		}
	}
	return result
}
