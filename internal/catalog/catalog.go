// Package catalog maintains the explicit registry of candidate types
// eligible for assignment through the picker.
//
// Types are never discovered by runtime scanning; every eligible type
// is registered explicitly, either from Go code or from a JSON or Lua
// manifest. Registration order is preserved: the picker and the tree
// builder see descriptors in the order they were added.
package catalog

import "sync"

// Catalog is the explicit registry of candidate type descriptors.
// It is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	byName  map[string]*Descriptor
	ordered []*Descriptor

	// onChange callbacks are called when descriptors are added/removed.
	onChange []func()
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		byName: make(map[string]*Descriptor),
	}
}

// Register adds a descriptor to the catalog. A descriptor with the
// same full name replaces the existing one in place, keeping its
// original position in registration order.
func (c *Catalog) Register(d *Descriptor) error {
	if d == nil {
		return ErrNilDescriptor
	}
	if d.FullName == "" {
		return ErrEmptyName
	}

	c.mu.Lock()
	if existing, ok := c.byName[d.FullName]; ok {
		for i, e := range c.ordered {
			if e == existing {
				c.ordered[i] = d
				break
			}
		}
	} else {
		c.ordered = append(c.ordered, d)
	}
	c.byName[d.FullName] = d
	c.mu.Unlock()

	c.notifyChange()
	return nil
}

// RegisterAll adds multiple descriptors to the catalog.
func (c *Catalog) RegisterAll(descriptors []*Descriptor) error {
	for _, d := range descriptors {
		if err := c.Register(d); err != nil {
			return err
		}
	}
	return nil
}

// Unregister removes a descriptor by full name.
func (c *Catalog) Unregister(fullName string) bool {
	c.mu.Lock()
	d, exists := c.byName[fullName]
	if exists {
		delete(c.byName, fullName)
		for i, e := range c.ordered {
			if e == d {
				c.ordered = append(c.ordered[:i], c.ordered[i+1:]...)
				break
			}
		}
	}
	c.mu.Unlock()

	if exists {
		c.notifyChange()
	}
	return exists
}

// UnregisterBySource removes all descriptors registered from a
// specific source. Returns the number removed.
func (c *Catalog) UnregisterBySource(source string) int {
	c.mu.Lock()
	count := 0
	kept := c.ordered[:0]
	for _, d := range c.ordered {
		if d.Source == source {
			delete(c.byName, d.FullName)
			count++
			continue
		}
		kept = append(kept, d)
	}
	c.ordered = kept
	c.mu.Unlock()

	if count > 0 {
		c.notifyChange()
	}
	return count
}

// Get retrieves a descriptor by full name. Returns nil when absent.
func (c *Catalog) Get(fullName string) *Descriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byName[fullName]
}

// Has checks if a descriptor is registered.
func (c *Catalog) Has(fullName string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.byName[fullName]
	return exists
}

// All returns all descriptors in registration order.
// Returns a copy to prevent modification during iteration.
func (c *Catalog) All() []*Descriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*Descriptor, len(c.ordered))
	copy(result, c.ordered)
	return result
}

// Count returns the number of registered descriptors.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ordered)
}

// Clear removes every descriptor.
func (c *Catalog) Clear() {
	c.mu.Lock()
	c.byName = make(map[string]*Descriptor)
	c.ordered = nil
	c.mu.Unlock()

	c.notifyChange()
}

// OnChange registers a callback invoked after any mutation.
func (c *Catalog) OnChange(fn func()) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.onChange = append(c.onChange, fn)
	c.mu.Unlock()
}

func (c *Catalog) notifyChange() {
	c.mu.RLock()
	callbacks := make([]func(), len(c.onChange))
	copy(callbacks, c.onChange)
	c.mu.RUnlock()

	for _, fn := range callbacks {
		fn()
	}
}
