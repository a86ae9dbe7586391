package catalog

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Manifest file format (JSON):
//
//	{
//	  "types": [
//	    {
//	      "name": "Game.Items.Sword",
//	      "concrete": true,
//	      "icon": {
//	        "custom": "sword-icon",
//	        "builtin": "d_ScriptableObject",
//	        "borrow": "Game.Items.Weapon"
//	      }
//	    }
//	  ]
//	}
//
// Only "name" is required. Entries with a missing or empty name are
// skipped rather than failing the whole manifest. "concrete" defaults
// to true since manifest entries exist to be selectable.

// LoadManifest reads a JSON manifest file and returns its descriptors.
// The returned descriptors carry "manifest:<path>" as their source.
func LoadManifest(path string) ([]*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return ParseManifest(data, "manifest:"+path)
}

// ParseManifest parses manifest JSON and returns its descriptors with
// the given source tag.
func ParseManifest(data []byte, source string) ([]*Descriptor, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidManifest)
	}

	types := gjson.GetBytes(data, "types")
	if !types.Exists() {
		return nil, fmt.Errorf("%w: missing \"types\" array", ErrInvalidManifest)
	}
	if !types.IsArray() {
		return nil, fmt.Errorf("%w: \"types\" is not an array", ErrInvalidManifest)
	}

	var descriptors []*Descriptor
	types.ForEach(func(_, entry gjson.Result) bool {
		name := entry.Get("name").String()
		if name == "" {
			return true
		}

		d := &Descriptor{
			FullName: name,
			Concrete: true,
			Source:   source,
		}
		if concrete := entry.Get("concrete"); concrete.Exists() {
			d.Concrete = concrete.Bool()
		}
		d.Icon = IconHint{
			Custom:     entry.Get("icon.custom").String(),
			Builtin:    entry.Get("icon.builtin").String(),
			BorrowFrom: entry.Get("icon.borrow").String(),
		}

		descriptors = append(descriptors, d)
		return true
	})

	return descriptors, nil
}

// LoadManifestInto loads a manifest file and registers its descriptors,
// replacing any previous registrations from the same file. Returns the
// number of descriptors registered.
func LoadManifestInto(c *Catalog, path string) (int, error) {
	descriptors, err := LoadManifest(path)
	if err != nil {
		return 0, err
	}

	c.UnregisterBySource("manifest:" + path)
	if err := c.RegisterAll(descriptors); err != nil {
		return 0, err
	}
	return len(descriptors), nil
}
