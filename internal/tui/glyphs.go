package tui

import "github.com/dshills/typepick/internal/icon"

// Icon references the terminal UI ships with.
const (
	refScript   = "script"
	refAsset    = "asset"
	refAbstract = "abstract"
)

// DefaultIconSource returns the built-in icon set. Manifests can
// request these through icon.builtin.
func DefaultIconSource() icon.MapSource {
	return icon.MapSource{
		Icons: map[string]string{
			"script": refScript,
			"asset":  refAsset,
		},
		ConcreteDefault: refScript,
		AbstractDefault: refAbstract,
	}
}

// DefaultGlyphs maps the built-in icon references to display runes.
func DefaultGlyphs() map[string]rune {
	return map[string]rune{
		refScript:   '◆',
		refAsset:    '■',
		refAbstract: '○',
	}
}
