package tag

import "reflect"

// Equal returns true if both values are structurally equal. Mutable and
// immutable forms of the same tree are equal.
func Equal(a, b interface{}) bool {
	return reflect.DeepEqual(normalize(freeze(a)), normalize(freeze(b)))
}

// normalize turns empty containers into a canonical form so that a nil and
// an empty node compare equal.
func normalize(v interface{}) interface{} {
	switch n := v.(type) {
	case Compound:
		if len(n.m) == 0 {
			return Compound{}
		}
		m := make(map[string]interface{}, len(n.m))
		for k, v := range n.m {
			m[k] = normalize(v)
		}
		return Compound{m: m}
	case List:
		if len(n.items) == 0 {
			return List{}
		}
		items := make([]interface{}, len(n.items))
		for i, v := range n.items {
			items[i] = normalize(v)
		}
		return List{items: items}
	}
	return v
}
