/*
Package tag implements the tree of named, typed values that the updater
migrates.

A record is a Compound: an immutable set of named fields. A field value is a
scalar (any of the Go integer and float kinds, string, []byte, []int32,
[]int64), a nested Compound or a List. Immutable values can be shared freely.

To edit a record, obtain a mutable view with ToMutable. The view is a Map
(nested compounds become Maps, lists become Slices) that is exclusively owned
by the caller and can be changed in place. Freeze converts it back into the
immutable form.

Nested fields are addressed with a dot separated path, for example
"states.color".
*/
package tag
