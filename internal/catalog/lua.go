package catalog

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Lua manifests declare types through a small API installed as the
// global "typepick" table:
//
//	typepick.declare{
//	    name = "Game.Items.Sword",
//	    concrete = true,
//	    icon = { custom = "sword-icon", borrow = "Game.Items.Weapon" },
//	}
//
// Scripts run in a restricted Lua state: only the base, table, string
// and math libraries are available. No file system or OS access.

// LoadLuaManifest executes a Lua manifest script and returns the
// descriptors it declares, in declaration order. The returned
// descriptors carry "lua:<path>" as their source.
func LoadLuaManifest(path string) ([]*Descriptor, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibraries(L)

	var descriptors []*Descriptor
	source := "lua:" + path

	declare := func(L *lua.LState) int {
		tbl := L.CheckTable(1)

		name := lua.LVAsString(L.GetField(tbl, "name"))
		if name == "" {
			L.ArgError(1, "name is required")
			return 0
		}

		d := &Descriptor{
			FullName: name,
			Concrete: true,
			Source:   source,
		}
		if concrete := L.GetField(tbl, "concrete"); concrete != lua.LNil {
			d.Concrete = lua.LVAsBool(concrete)
		}
		if icon, ok := L.GetField(tbl, "icon").(*lua.LTable); ok {
			d.Icon = IconHint{
				Custom:     lua.LVAsString(L.GetField(icon, "custom")),
				Builtin:    lua.LVAsString(L.GetField(icon, "builtin")),
				BorrowFrom: lua.LVAsString(L.GetField(icon, "borrow")),
			}
		}

		descriptors = append(descriptors, d)
		return 0
	}

	mod := L.NewTable()
	L.SetField(mod, "declare", L.NewFunction(declare))
	L.SetGlobal("typepick", mod)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("lua manifest %s: %w", path, err)
	}

	return descriptors, nil
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	// base library (type, pairs, ipairs, etc.)
	lua.OpenBase(L)

	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Intentionally NOT opened: io, os, debug, package.

	// Remove the loaders base exposes so manifests stay declarative.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// LoadLuaManifestInto executes a Lua manifest and registers its
// descriptors, replacing any previous registrations from the same
// file. Returns the number of descriptors registered.
func LoadLuaManifestInto(c *Catalog, path string) (int, error) {
	descriptors, err := LoadLuaManifest(path)
	if err != nil {
		return 0, err
	}

	c.UnregisterBySource("lua:" + path)
	if err := c.RegisterAll(descriptors); err != nil {
		return 0, err
	}
	return len(descriptors), nil
}
