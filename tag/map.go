package tag

// Map is the mutable view of a Compound. It is exclusively owned by whoever
// obtained it and can be changed in place.
type Map map[string]interface{}

// Get returns the value of a field and whether it exists.
func (m Map) Get(name string) (interface{}, bool) {
	v, ok := m[name]
	return v, ok
}

// Has returns true if a field with given name exists.
func (m Map) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Set assigns a value to a field.
func (m Map) Set(name string, value interface{}) {
	m[name] = value
}

// Remove deletes a field. It returns false if the field did not exist.
func (m Map) Remove(name string) bool {
	if _, ok := m[name]; !ok {
		return false
	}
	delete(m, name)
	return true
}

// Rename moves the value of a field under a new name. It returns false if
// the field did not exist. An existing field with the new name is
// overwritten.
func (m Map) Rename(from, to string) bool {
	v, ok := m[from]
	if !ok {
		return false
	}
	delete(m, from)
	m[to] = v
	return true
}

// GetPath returns the value found under a dot separated path.
func (m Map) GetPath(path string) (interface{}, bool) {
	parent, name, ok := m.parent(path, false)
	if !ok {
		return nil, false
	}
	v, ok := parent[name]
	return v, ok
}

// SetPath assigns a value to the field found under a dot separated path.
// Missing intermediate nodes are created. It returns false if an
// intermediate node exists but is not a compound.
func (m Map) SetPath(path string, value interface{}) bool {
	parent, name, ok := m.parent(path, true)
	if !ok {
		return false
	}
	parent[name] = value
	return true
}

// RemovePath deletes the field found under a dot separated path. It returns
// false if nothing was removed.
func (m Map) RemovePath(path string) bool {
	parent, name, ok := m.parent(path, false)
	if !ok {
		return false
	}
	return parent.Remove(name)
}

// RenamePath moves the field found under a dot separated path to a sibling
// field with a new name. It returns false if the field did not exist.
func (m Map) RenamePath(path, newName string) bool {
	parent, name, ok := m.parent(path, false)
	if !ok {
		return false
	}
	return parent.Rename(name, newName)
}

// parent walks the path and returns the node holding the last path element
// together with that element name.
func (m Map) parent(path string, create bool) (Map, string, bool) {
	names := splitPath(path)
	if len(names) == 0 {
		return nil, "", false
	}
	cur := m
	for _, name := range names[:len(names)-1] {
		v, ok := cur[name]
		if !ok {
			if !create {
				return nil, "", false
			}
			next := make(Map)
			cur[name] = next
			cur = next
			continue
		}
		next, ok := asMap(v)
		if !ok {
			return nil, "", false
		}
		// Keep the tree uniform so that later lookups and edits see
		// the same node.
		cur[name] = next
		cur = next
	}
	return cur, names[len(names)-1], true
}

// Freeze returns an immutable deep copy of this map.
func (m Map) Freeze() Compound {
	return freezeMap(m)
}

// Slice is the mutable view of a List.
type Slice []interface{}

// Freeze returns an immutable deep copy of this slice.
func (s Slice) Freeze() List {
	return freezeSlice(s)
}

// Clone returns a mutable deep copy of any tag value.
func Clone(v interface{}) interface{} {
	return thaw(freeze(v))
}

func asMap(v interface{}) (Map, bool) {
	switch n := v.(type) {
	case Map:
		return n, true
	case map[string]interface{}:
		return Map(n), true
	case Compound:
		return n.ToMutable(), true
	}
	return nil, false
}

func freezeMap(src map[string]interface{}) Compound {
	m := make(map[string]interface{}, len(src))
	for k, v := range src {
		m[k] = freeze(v)
	}
	return Compound{m: m}
}

func freezeSlice(src []interface{}) List {
	items := make([]interface{}, len(src))
	for i, v := range src {
		items[i] = freeze(v)
	}
	return List{items: items}
}

// freeze returns the immutable form of a value. Immutable values are
// returned as they are.
func freeze(v interface{}) interface{} {
	switch n := v.(type) {
	case Map:
		return freezeMap(n)
	case map[string]interface{}:
		return freezeMap(n)
	case Slice:
		return freezeSlice(n)
	case []interface{}:
		return freezeSlice(n)
	case []byte:
		return append([]byte(nil), n...)
	case []int32:
		return append([]int32(nil), n...)
	case []int64:
		return append([]int64(nil), n...)
	}
	return v
}

// thaw returns a mutable deep copy of a value.
func thaw(v interface{}) interface{} {
	switch n := v.(type) {
	case Compound:
		return n.ToMutable()
	case List:
		return n.ToMutable()
	case []byte:
		return append([]byte(nil), n...)
	case []int32:
		return append([]int32(nil), n...)
	case []int64:
		return append([]int64(nil), n...)
	}
	return v
}
