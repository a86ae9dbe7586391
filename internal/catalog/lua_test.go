package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleLuaManifest = `
typepick.declare{
    name = "Game.Items.Sword",
    concrete = true,
    icon = { custom = "sword-icon" },
}

typepick.declare{
    name = "Game.Items.Shield",
    icon = { borrow = "Game.Items.Sword" },
}

typepick.declare{ name = "Game.Items.Weapon", concrete = false }
`

func writeLua(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "types.lua")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLuaManifest(t *testing.T) {
	path := writeLua(t, sampleLuaManifest)

	descriptors, err := LoadLuaManifest(path)
	if err != nil {
		t.Fatalf("LoadLuaManifest() failed: %v", err)
	}
	if len(descriptors) != 3 {
		t.Fatalf("len(descriptors) = %d, want 3", len(descriptors))
	}

	sword := descriptors[0]
	if sword.FullName != "Game.Items.Sword" {
		t.Errorf("FullName = %q", sword.FullName)
	}
	if sword.Icon.Custom != "sword-icon" {
		t.Errorf("Icon.Custom = %q", sword.Icon.Custom)
	}
	if sword.Source != "lua:"+path {
		t.Errorf("Source = %q", sword.Source)
	}

	if !descriptors[1].Concrete {
		t.Error("concrete should default to true")
	}
	if descriptors[2].Concrete {
		t.Error("explicit concrete=false ignored")
	}
}

func TestLoadLuaManifest_DeclarationOrder(t *testing.T) {
	path := writeLua(t, `
typepick.declare{ name = "B.Second" }
typepick.declare{ name = "A.First" }
`)

	descriptors, err := LoadLuaManifest(path)
	if err != nil {
		t.Fatalf("LoadLuaManifest() failed: %v", err)
	}
	if len(descriptors) != 2 || descriptors[0].FullName != "B.Second" {
		t.Errorf("declaration order not preserved: %v", descriptors)
	}
}

func TestLoadLuaManifest_Errors(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		path := writeLua(t, `typepick.declare{ concrete = true }`)
		if _, err := LoadLuaManifest(path); err == nil {
			t.Error("expected error for declaration without name")
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		path := writeLua(t, `typepick.declare{`)
		if _, err := LoadLuaManifest(path); err == nil {
			t.Error("expected error for broken script")
		}
	})

	t.Run("sandboxed io", func(t *testing.T) {
		path := writeLua(t, `io.open("/etc/passwd")`)
		if _, err := LoadLuaManifest(path); err == nil {
			t.Error("expected error: io library must not be available")
		}
	})
}

func TestLoadLuaManifestInto(t *testing.T) {
	path := writeLua(t, sampleLuaManifest)

	c := New()
	count, err := LoadLuaManifestInto(c, path)
	if err != nil {
		t.Fatalf("LoadLuaManifestInto() failed: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	// Reload replaces prior registrations from this script.
	if err := os.WriteFile(path, []byte(`typepick.declare{ name = "Game.Only" }`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLuaManifestInto(c, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if c.Has("Game.Items.Sword") {
		t.Error("stale descriptor survived reload")
	}
	if !c.Has("Game.Only") {
		t.Error("expected Game.Only after reload")
	}
}
