package tagupdater

import (
	"strings"
	"testing"

	"github.com/iov-one/tagupdater/tag"
	"github.com/stretchr/testify/assert"
)

func TestUpdaterSteps(t *testing.T) {
	cases := map[string]struct {
		build       func(*UpdaterBuilder)
		in          tag.Map
		want        tag.Map
		wantChanged bool
	}{
		"set a new field": {
			build:       func(b *UpdaterBuilder) { b.Set("a", "x") },
			in:          tag.Map{},
			want:        tag.Map{"a": "x"},
			wantChanged: true,
		},
		"set the same value": {
			build: func(b *UpdaterBuilder) { b.Set("a", "x") },
			in:    tag.Map{"a": "x"},
			want:  tag.Map{"a": "x"},
		},
		"set below a scalar": {
			build: func(b *UpdaterBuilder) { b.Set("a.b", "x") },
			in:    tag.Map{"a": int8(1)},
			want:  tag.Map{"a": int8(1)},
		},
		"try add an existing field": {
			build: func(b *UpdaterBuilder) { b.TryAdd("states.lit", int8(1)) },
			in:    tag.Map{"states": tag.Map{"lit": int8(0)}},
			want:  tag.Map{"states": tag.Map{"lit": int8(0)}},
		},
		"try add a missing field": {
			build:       func(b *UpdaterBuilder) { b.TryAdd("states.lit", int8(1)) },
			in:          tag.Map{},
			want:        tag.Map{"states": tag.Map{"lit": int8(1)}},
			wantChanged: true,
		},
		"remove": {
			build:       func(b *UpdaterBuilder) { b.Remove("states.lit") },
			in:          tag.Map{"states": tag.Map{"lit": int8(0)}},
			want:        tag.Map{"states": tag.Map{}},
			wantChanged: true,
		},
		"remove a missing field": {
			build: func(b *UpdaterBuilder) { b.Remove("states.lit") },
			in:    tag.Map{},
			want:  tag.Map{},
		},
		"rename": {
			build:       func(b *UpdaterBuilder) { b.Rename("states.colour", "color") },
			in:          tag.Map{"states": tag.Map{"colour": "red"}},
			want:        tag.Map{"states": tag.Map{"color": "red"}},
			wantChanged: true,
		},
		"edit": {
			build: func(b *UpdaterBuilder) {
				b.Edit("name", func(old interface{}) (interface{}, bool) {
					s, ok := old.(string)
					if !ok || strings.HasPrefix(s, "minecraft:") {
						return nil, false
					}
					return "minecraft:" + s, true
				})
			},
			in:          tag.Map{"name": "stone"},
			want:        tag.Map{"name": "minecraft:stone"},
			wantChanged: true,
		},
		"edit refused": {
			build: func(b *UpdaterBuilder) {
				b.Edit("name", func(interface{}) (interface{}, bool) { return nil, false })
			},
			in:   tag.Map{"name": "stone"},
			want: tag.Map{"name": "stone"},
		},
		"all steps run after a change": {
			build: func(b *UpdaterBuilder) {
				b.Set("a", int32(1)).Set("b", int32(2)).Remove("missing")
			},
			in:          tag.Map{},
			want:        tag.Map{"a": int32(1), "b": int32(2)},
			wantChanged: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			b := NewRegistry().Register(1, 0, 0)
			tc.build(b)
			u := b.MustCommit()

			changed := u.Apply(tc.in)
			assert.Equal(t, tc.wantChanged, changed)
			assert.True(t, tag.Equal(tc.want, tc.in), "want %v, got %v", tc.want, tc.in)
		})
	}
}

func TestSetValueIsNotShared(t *testing.T) {
	states := tag.Map{"color": "red"}
	u := NewRegistry().Register(1, 0, 0).Set("states", states).MustCommit()

	// Changing the value after registration does not change the updater.
	states["color"] = "blue"

	first, second := tag.Map{}, tag.Map{}
	u.Apply(first)
	u.Apply(second)
	first["states"].(tag.Map)["color"] = "green"

	assert.Equal(t, "red", second["states"].(tag.Map)["color"])
	assert.Equal(t, 1, u.Steps())
}
