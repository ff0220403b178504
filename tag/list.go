package tag

import "encoding/json"

// List is an immutable ordered sequence of values.
type List struct {
	items []interface{}
}

// NewList returns a list holding a frozen copy of given items.
func NewList(items ...interface{}) List {
	return freezeSlice(items)
}

// Len returns the number of elements.
func (l List) Len() int {
	return len(l.items)
}

// Index returns the element at position i. It panics if i is out of range.
func (l List) Index(i int) interface{} {
	return l.items[i]
}

// ToMutable returns a deep mutable copy of this list.
func (l List) ToMutable() Slice {
	s := make(Slice, len(l.items))
	for i, v := range l.items {
		s[i] = thaw(v)
	}
	return s
}

// MarshalJSON implements json.Marshaler.
func (l List) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}
