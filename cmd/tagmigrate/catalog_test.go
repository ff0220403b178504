package main

import (
	"testing"

	"github.com/iov-one/tagupdater"
	"github.com/iov-one/tagupdater/tag"
	"github.com/stretchr/testify/assert"
)

func TestCatalogIsIdempotent(t *testing.T) {
	reg := newCatalog()
	records := []tag.Compound{
		tag.NewCompound(map[string]interface{}{"name": "stone"}),
		tag.NewCompound(map[string]interface{}{
			"name":   "grass_path",
			"states": map[string]interface{}{"direction": int32(2), "deprecated": int8(1)},
		}),
		tag.NewCompound(map[string]interface{}{"name": "minecraft:stone_slab"}),
	}
	for _, rec := range records {
		once := reg.Migrate(rec, tagupdater.Version{})
		twice := reg.MigrateRecord(once)
		assert.True(t, twice.Same(once), "second migration of %v must be a no-op", once)
	}
}

func TestWaterloggable(t *testing.T) {
	cases := map[string]struct {
		in          tag.Map
		wantChanged bool
	}{
		"stairs":          {in: tag.Map{"name": "minecraft:oak_stairs"}, wantChanged: true},
		"slab":            {in: tag.Map{"name": "minecraft:stone_slab", "states": tag.Map{}}, wantChanged: true},
		"already present": {in: tag.Map{"name": "minecraft:stone_slab", "states": tag.Map{"waterlogged": int8(1)}}},
		"other block":     {in: tag.Map{"name": "minecraft:stone"}},
		"no name":         {in: tag.Map{}},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantChanged, waterloggable(tc.in))
		})
	}
}
