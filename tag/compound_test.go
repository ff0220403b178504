package tag

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompoundFreezesNestedValues(t *testing.T) {
	src := map[string]interface{}{
		"name":    "minecraft:wool",
		"version": int32(17825808),
		"states": map[string]interface{}{
			"color": "red",
		},
		"tags": []interface{}{"a", Map{"b": int8(1)}},
	}
	c := NewCompound(src)

	// Changes to the source must not leak into the compound.
	src["name"] = "changed"
	src["states"].(map[string]interface{})["color"] = "blue"

	name, ok := c.GetString("name")
	require.True(t, ok)
	assert.Equal(t, "minecraft:wool", name)

	states, ok := c.GetCompound("states")
	require.True(t, ok)
	color, _ := states.GetString("color")
	assert.Equal(t, "red", color)

	tags, ok := c.GetList("tags")
	require.True(t, ok)
	require.Equal(t, 2, tags.Len())
	_, isCompound := tags.Index(1).(Compound)
	assert.True(t, isCompound, "nested map in a list must be frozen")

	v, ok := c.GetInt("version")
	require.True(t, ok)
	assert.Equal(t, int64(17825808), v)

	assert.Equal(t, []string{"name", "states", "tags", "version"}, c.Keys())
	assert.Equal(t, 4, c.Len())
	assert.True(t, c.Has("states"))
	assert.False(t, c.Has("missing"))
}

func TestCompoundGetPath(t *testing.T) {
	c := NewCompound(map[string]interface{}{
		"a": map[string]interface{}{
			"b": map[string]interface{}{"c": int16(3)},
		},
		"x": "scalar",
	})

	cases := map[string]struct {
		path   string
		want   interface{}
		wantOk bool
	}{
		"top level field": {path: "x", want: "scalar", wantOk: true},
		"nested field":    {path: "a.b.c", want: int16(3), wantOk: true},
		"missing leaf":    {path: "a.b.d", want: nil, wantOk: false},
		"scalar is not a node": {
			path: "x.y", want: nil, wantOk: false,
		},
		"empty path": {path: "", want: c, wantOk: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, ok := c.GetPath(tc.path)
			assert.Equal(t, tc.wantOk, ok)
			assert.True(t, Equal(tc.want, got), "want %v, got %v", tc.want, got)
		})
	}
}

func TestCompoundWithDoesNotModifyOriginal(t *testing.T) {
	c := NewCompound(map[string]interface{}{"version": int32(1), "a": "b"})
	d := c.With("version", int32(2))

	v, _ := c.GetInt("version")
	assert.Equal(t, int64(1), v)
	v, _ = d.GetInt("version")
	assert.Equal(t, int64(2), v)
	a, _ := d.GetString("a")
	assert.Equal(t, "b", a)
	assert.False(t, c.Same(d))
	assert.True(t, c.Same(c))
}

func TestToMutableIsADeepCopy(t *testing.T) {
	c := NewCompound(map[string]interface{}{
		"states": map[string]interface{}{"color": "red"},
		"list":   []interface{}{int32(1)},
		"bytes":  []byte{1, 2},
	})
	m := c.ToMutable()
	m["states"].(Map)["color"] = "blue"
	m["list"].(Slice)[0] = int32(2)
	m["bytes"].([]byte)[0] = 9

	color, _ := c.GetPath("states.color")
	assert.Equal(t, "red", color)
	l, _ := c.GetList("list")
	assert.Equal(t, int32(1), l.Index(0))
	b, _ := c.Get("bytes")
	assert.Equal(t, []byte{1, 2}, b)

	// Round trip keeps the structure.
	assert.True(t, c.Equal(c.ToMutable().Freeze()))
}

func TestEqual(t *testing.T) {
	cases := map[string]struct {
		a, b interface{}
		want bool
	}{
		"mutable and immutable forms": {
			a:    NewCompound(map[string]interface{}{"a": []interface{}{"x"}}),
			b:    Map{"a": Slice{"x"}},
			want: true,
		},
		"nil and empty compound": {
			a:    Compound{},
			b:    NewCompound(nil),
			want: true,
		},
		"different integer kinds": {
			a:    Map{"a": int32(1)},
			b:    Map{"a": int64(1)},
			want: false,
		},
		"different values": {
			a:    Map{"a": "x"},
			b:    Map{"a": "y"},
			want: false,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, Equal(tc.a, tc.b))
		})
	}
}

func TestCompoundMarshalJSON(t *testing.T) {
	c := NewCompound(map[string]interface{}{
		"name":   "stone",
		"states": map[string]interface{}{"n": int32(1)},
		"list":   []interface{}{"a"},
	})
	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"stone","states":{"n":1},"list":["a"]}`, string(raw))

	raw, err = json.Marshal(Compound{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}
