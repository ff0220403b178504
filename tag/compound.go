package tag

import (
	"encoding/json"
	"reflect"
	"sort"
)

// Compound is an immutable node of named fields.
//
// The zero value is an empty compound.
type Compound struct {
	m map[string]interface{}
}

// NewCompound returns a compound holding a deep, frozen copy of given fields.
// Nested maps and slices are converted into their immutable form.
func NewCompound(fields map[string]interface{}) Compound {
	return freezeMap(fields)
}

// Get returns the value of a field and whether it exists.
func (c Compound) Get(name string) (interface{}, bool) {
	v, ok := c.m[name]
	return v, ok
}

// Has returns true if a field with given name exists.
func (c Compound) Has(name string) bool {
	_, ok := c.m[name]
	return ok
}

// Len returns the number of fields.
func (c Compound) Len() int {
	return len(c.m)
}

// Keys returns all field names in lexicographical order.
func (c Compound) Keys() []string {
	keys := make([]string, 0, len(c.m))
	for k := range c.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetInt returns the value of an integer field. Any integer kind is accepted.
func (c Compound) GetInt(name string) (int64, bool) {
	v, ok := c.m[name]
	if !ok {
		return 0, false
	}
	return AsInt(v)
}

// GetString returns the value of a string field.
func (c Compound) GetString(name string) (string, bool) {
	s, ok := c.m[name].(string)
	return s, ok
}

// GetCompound returns the value of a nested compound field.
func (c Compound) GetCompound(name string) (Compound, bool) {
	n, ok := c.m[name].(Compound)
	return n, ok
}

// GetList returns the value of a list field.
func (c Compound) GetList(name string) (List, bool) {
	l, ok := c.m[name].(List)
	return l, ok
}

// GetPath returns the value found under a dot separated path.
func (c Compound) GetPath(path string) (interface{}, bool) {
	var cur interface{} = c
	for _, name := range splitPath(path) {
		n, ok := cur.(Compound)
		if !ok {
			return nil, false
		}
		if cur, ok = n.m[name]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// With returns a copy of this compound with a single field set to given
// value. This compound is not modified.
func (c Compound) With(name string, value interface{}) Compound {
	m := make(map[string]interface{}, len(c.m)+1)
	for k, v := range c.m {
		m[k] = v
	}
	m[name] = freeze(value)
	return Compound{m: m}
}

// ToMutable returns a deep mutable copy of this compound.
func (c Compound) ToMutable() Map {
	m := make(Map, len(c.m))
	for k, v := range c.m {
		m[k] = thaw(v)
	}
	return m
}

// Same returns true if both compounds share the same backing node. A
// compound returned unchanged by a function is the same as its input.
func (c Compound) Same(other Compound) bool {
	return reflect.ValueOf(c.m).Pointer() == reflect.ValueOf(other.m).Pointer()
}

// Equal returns true if both compounds hold structurally equal fields.
func (c Compound) Equal(other Compound) bool {
	return Equal(c, other)
}

// MarshalJSON implements json.Marshaler.
func (c Compound) MarshalJSON() ([]byte, error) {
	if c.m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.m)
}

// AsInt returns the value of any integer kind as int64.
func AsInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case uint:
		return int64(n), true
	}
	return 0, false
}
