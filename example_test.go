package tagupdater_test

import (
	"encoding/json"
	"fmt"

	"github.com/iov-one/tagupdater"
	"github.com/iov-one/tagupdater/tag"
)

func ExampleRegistry_Migrate() {
	reg := tagupdater.NewRegistry()
	reg.Register(1, 16, 0).
		Rename("states.colour", "color").
		MustCommit()
	reg.Register(1, 16, 0).
		TryAdd("states.facing", "north").
		MustCommit()

	rec := tag.NewCompound(map[string]interface{}{
		"name":   "minecraft:wool",
		"states": map[string]interface{}{"colour": "red"},
	})
	migrated := reg.Migrate(rec, tagupdater.MustVersion(1, 12, 0))

	raw, _ := json.Marshal(migrated)
	fmt.Println(reg.CurrentVersion())
	fmt.Println(string(raw))

	again := reg.Migrate(migrated, reg.CurrentVersion())
	fmt.Println(again.Same(migrated))
	// Output:
	// 1.16.0-1
	// {"name":"minecraft:wool","states":{"color":"red","facing":"north"},"version":17825793}
	// true
}
