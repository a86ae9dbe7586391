// Package icon resolves a display icon for each selectable type.
//
// Icons are opaque string references; the rendering layer decides
// what a reference means (a glyph, an image name). The resolver only
// picks which reference applies.
package icon

import "github.com/dshills/typepick/internal/catalog"

// Source supplies icon references from the host environment.
// Lookups that fail return the empty string, never an error.
type Source interface {
	// Named returns the icon reference for a built-in icon name.
	Named(name string) string

	// DefaultFor returns the type-specific default icon reference.
	DefaultFor(d *catalog.Descriptor) string
}

// maxBorrowDepth bounds borrow-from chains so a cycle between
// descriptors cannot recurse forever.
const maxBorrowDepth = 8

// Resolver picks the icon for a descriptor. Resolution order: the
// descriptor's explicit custom icon, then its named built-in icon,
// then the icon of the type it borrows from, then the type-specific
// default. The first non-empty result wins.
type Resolver struct {
	source  Source
	catalog *catalog.Catalog
}

// NewResolver creates a resolver. The catalog is consulted to follow
// borrow-from references; it may be nil, in which case borrowing is
// skipped.
func NewResolver(source Source, c *catalog.Catalog) *Resolver {
	return &Resolver{source: source, catalog: c}
}

// Resolve returns the icon reference for a descriptor, or the empty
// string when nothing resolves. Nil descriptors resolve to nothing.
func (r *Resolver) Resolve(d *catalog.Descriptor) string {
	return r.resolve(d, 0)
}

func (r *Resolver) resolve(d *catalog.Descriptor, depth int) string {
	if d == nil || depth > maxBorrowDepth {
		return ""
	}

	if d.Icon.Custom != "" {
		return d.Icon.Custom
	}

	if d.Icon.Builtin != "" {
		if ref := r.source.Named(d.Icon.Builtin); ref != "" {
			return ref
		}
	}

	if d.Icon.BorrowFrom != "" && r.catalog != nil {
		if borrowed := r.catalog.Get(d.Icon.BorrowFrom); borrowed != nil && borrowed != d {
			if ref := r.resolve(borrowed, depth+1); ref != "" {
				return ref
			}
		}
	}

	return r.source.DefaultFor(d)
}

// MapSource is a Source backed by plain maps, suitable for tests and
// for hosts with a fixed icon set.
type MapSource struct {
	// Icons maps built-in icon names to references.
	Icons map[string]string

	// ConcreteDefault is the default reference for concrete types.
	ConcreteDefault string

	// AbstractDefault is the default reference for non-concrete types.
	AbstractDefault string
}

// Named implements Source.
func (m MapSource) Named(name string) string {
	return m.Icons[name]
}

// DefaultFor implements Source.
func (m MapSource) DefaultFor(d *catalog.Descriptor) string {
	if d == nil {
		return ""
	}
	if d.Concrete {
		return m.ConcreteDefault
	}
	return m.AbstractDefault
}
