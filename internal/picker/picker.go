// Package picker composes the catalog, filter and tree builder into
// the searchable hierarchy a rendering layer displays.
//
// The picker owns no UI. It holds the current query, the filtered
// candidate list and the rebuilt tree, and announces activity on an
// event bus so uncoupled components can react to selections.
package picker

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dshills/typepick/internal/catalog"
	"github.com/dshills/typepick/internal/event"
	"github.com/dshills/typepick/internal/typetree"
)

// Event names broadcast by the picker.
const (
	// EventFiltered is broadcast after the query changes; args are
	// the query string and the candidate count.
	EventFiltered = "picker.filtered"

	// EventSelected is broadcast after a leaf is selected; the single
	// arg is the selected *catalog.Descriptor.
	EventSelected = "picker.selected"
)

// Sentinel errors for selection.
var (
	// ErrNodeNotFound is returned when no node has the given ID.
	ErrNodeNotFound = errors.New("node not found")

	// ErrNotSelectable is returned when the node is a grouping node
	// or its type is not concrete.
	ErrNotSelectable = errors.New("node is not selectable")
)

// Picker drives the searchable type hierarchy.
// It is safe for concurrent use.
type Picker struct {
	mu         sync.RWMutex
	catalog    *catalog.Catalog
	bus        *event.Bus
	query      string
	candidates []*catalog.Descriptor
	roots      []*typetree.Node

	// onChange callbacks fire after the tree is rebuilt.
	onChange []func()
}

// New creates a picker over a catalog. The bus may be nil when no
// one needs notifications. The picker refreshes itself whenever the
// catalog changes.
func New(c *catalog.Catalog, bus *event.Bus) *Picker {
	p := &Picker{
		catalog: c,
		bus:     bus,
	}
	p.Refresh()
	c.OnChange(p.Refresh)
	return p
}

// Refresh re-reads the catalog and rebuilds the tree with the
// current query.
func (p *Picker) Refresh() {
	p.mu.Lock()
	p.candidates = typetree.Filter(p.catalog.All(), p.query)
	p.roots = typetree.Build(p.candidates)
	p.mu.Unlock()

	p.notifyChange()
}

// SetQuery narrows the candidate list and rebuilds the tree. Setting
// the same query again is a no-op.
func (p *Picker) SetQuery(query string) {
	p.mu.Lock()
	if query == p.query {
		p.mu.Unlock()
		return
	}
	p.query = query
	p.candidates = typetree.Filter(p.catalog.All(), query)
	p.roots = typetree.Build(p.candidates)
	count := len(p.candidates)
	p.mu.Unlock()

	if p.bus != nil {
		p.bus.Broadcast(EventFiltered, p, query, count)
	}
	p.notifyChange()
}

// Query returns the current filter query.
func (p *Picker) Query() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.query
}

// Tree returns the current forest of top-level nodes. The forest is
// replaced, never mutated, on each rebuild, so callers may iterate
// it without holding the picker.
func (p *Picker) Tree() []*typetree.Node {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.roots
}

// Candidates returns the current filtered descriptor list.
func (p *Picker) Candidates() []*catalog.Descriptor {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]*catalog.Descriptor, len(p.candidates))
	copy(result, p.candidates)
	return result
}

// Select picks the leaf node with the given ID and broadcasts
// EventSelected. Grouping nodes and non-concrete types cannot be
// selected.
func (p *Picker) Select(id int) (*catalog.Descriptor, error) {
	p.mu.RLock()
	node := typetree.Find(p.roots, id)
	p.mu.RUnlock()

	if node == nil {
		return nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}
	if !node.IsLeaf() || !node.Descriptor.Concrete {
		return nil, fmt.Errorf("%w: %s", ErrNotSelectable, node.Label)
	}

	if p.bus != nil {
		p.bus.Broadcast(EventSelected, p, node.Descriptor)
	}
	return node.Descriptor, nil
}

// OnChange registers a callback invoked after each rebuild.
func (p *Picker) OnChange(fn func()) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	p.onChange = append(p.onChange, fn)
	p.mu.Unlock()
}

func (p *Picker) notifyChange() {
	p.mu.RLock()
	callbacks := make([]func(), len(p.onChange))
	copy(callbacks, p.onChange)
	p.mu.RUnlock()

	for _, fn := range callbacks {
		fn()
	}
}
