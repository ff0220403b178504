package main

import (
	"strings"

	"github.com/iov-one/tagupdater"
	"github.com/iov-one/tagupdater/tag"
)

// newCatalog returns the registry of block record updaters this program
// migrates records with.
func newCatalog(opts ...tagupdater.Option) *tagupdater.Registry {
	reg := tagupdater.NewRegistry(opts...)

	// Block names are namespaced and states live in their own compound.
	reg.Register(1, 16, 0).
		Edit("name", namespaced).
		TryAdd("states", tag.Map{}).
		MustCommit()
	reg.Register(1, 16, 0).
		Rename("states.direction", "facing_direction").
		Rename("states.colour", "color").
		MustCommit()

	reg.Register(1, 18, 10).
		Remove("states.deprecated").
		Edit("name", renamed(map[string]string{
			"minecraft:grass":      "minecraft:grass_block",
			"minecraft:grass_path": "minecraft:dirt_path",
		})).
		MustCommit()
	// Logically part of the previous updater, both must be applied to
	// records stamped with the first one.
	reg.Register(1, 18, 10).
		KeepSequence().
		Step(waterloggable).
		MustCommit()

	return reg
}

func namespaced(old interface{}) (interface{}, bool) {
	name, ok := old.(string)
	if !ok || strings.Contains(name, ":") {
		return nil, false
	}
	return "minecraft:" + name, true
}

func renamed(names map[string]string) func(interface{}) (interface{}, bool) {
	return func(old interface{}) (interface{}, bool) {
		name, ok := old.(string)
		if !ok {
			return nil, false
		}
		n, ok := names[name]
		return n, ok
	}
}

// waterloggable adds the waterlogged state to all stairs and slabs.
func waterloggable(m tag.Map) bool {
	name, _ := m.Get("name")
	s, ok := name.(string)
	if !ok || !(strings.HasSuffix(s, "_stairs") || strings.HasSuffix(s, "_slab")) {
		return false
	}
	if _, ok := m.GetPath("states.waterlogged"); ok {
		return false
	}
	return m.SetPath("states.waterlogged", int8(0))
}
