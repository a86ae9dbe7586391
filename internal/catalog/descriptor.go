package catalog

import (
	"strings"

	"github.com/dshills/typepick/internal/nicify"
)

// IconHint carries optional icon metadata for a descriptor. All fields
// may be empty; resolution order is decided by the icon resolver.
type IconHint struct {
	// Custom is an explicit custom icon name.
	Custom string

	// Builtin is the name of a built-in icon.
	Builtin string

	// BorrowFrom is the full name of another type whose icon should be
	// used for this one.
	BorrowFrom string
}

// Empty reports whether the hint carries no icon information.
func (h IconHint) Empty() bool {
	return h.Custom == "" && h.Builtin == "" && h.BorrowFrom == ""
}

// Descriptor identifies one candidate type for the picker.
type Descriptor struct {
	// FullName is the fully-qualified type name. Namespace and
	// enclosing-type segments are separated by '.', '+' or '/'.
	FullName string

	// Concrete marks a leaf-selectable type, as opposed to an
	// abstract grouping-only entry.
	Concrete bool

	// Source indicates where the descriptor was registered from,
	// e.g. "core", "manifest:/path/to/types.json", "lua:/path/to/types.lua".
	Source string

	// Icon is optional icon metadata consumed by the icon resolver.
	Icon IconHint
}

// isSegmentSeparator reports whether r delimits breadcrumb segments
// in a fully-qualified name.
func isSegmentSeparator(r rune) bool {
	return r == '.' || r == '+' || r == '/'
}

// Segments splits the full name into its raw naming segments. Empty
// segments are dropped. Returns nil when the full name is empty.
func (d *Descriptor) Segments() []string {
	if d == nil || d.FullName == "" {
		return nil
	}
	return strings.FieldsFunc(d.FullName, isSegmentSeparator)
}

// SimpleName returns the raw final segment of the full name, arity
// suffix included. Empty when the descriptor has no resolvable name.
func (d *Descriptor) SimpleName() string {
	segs := d.Segments()
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// DisplayName returns the nicified simple name used as the leaf label.
func (d *Descriptor) DisplayName() string {
	return nicify.Name(d.SimpleName())
}

// Breadcrumb returns the ordered naming segments used to place the
// type in the hierarchy: namespace and enclosing-type segments as-is,
// ending in the nicified simple name. Returns nil when there is no
// resolvable name.
func (d *Descriptor) Breadcrumb() []string {
	segs := d.Segments()
	if len(segs) == 0 {
		return nil
	}
	crumb := make([]string, len(segs))
	copy(crumb, segs[:len(segs)-1])
	crumb[len(segs)-1] = nicify.Name(segs[len(segs)-1])
	return crumb
}
