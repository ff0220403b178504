package tagupdater

import (
	"github.com/google/btree"
	"github.com/iov-one/tagupdater/errors"
	"github.com/iov-one/tagupdater/tag"
)

// Step is a single transformation of a record. It must return true if the
// record was modified.
type Step func(tag.Map) bool

// Updater is a versioned unit of transformation steps. An updater is created
// by an UpdaterBuilder and never changes after it was committed.
type Updater struct {
	version Version
	steps   []Step
	// ordinal is the registration order. It keeps updaters sharing a
	// version in the order they were committed.
	ordinal uint64
}

var _ btree.Item = (*Updater)(nil)

// Version returns the version assigned to this updater.
func (u *Updater) Version() Version {
	return u.version
}

// Steps returns the number of transformation steps.
func (u *Updater) Steps() int {
	return len(u.steps)
}

// Apply runs all steps against given record. It returns true if any of the
// steps changed the record. Every step runs, even after a change was
// reported.
func (u *Updater) Apply(m tag.Map) bool {
	var changed bool
	for _, step := range u.steps {
		if step(m) {
			changed = true
		}
	}
	return changed
}

// Less implements btree.Item.
func (u *Updater) Less(than btree.Item) bool {
	o := than.(*Updater)
	if u.version != o.version {
		return u.version.Less(o.version)
	}
	return u.ordinal < o.ordinal
}

// UpdaterBuilder collects transformation steps of an updater. Call Commit
// to insert the updater into the registry it was created by.
type UpdaterBuilder struct {
	reg    *Registry
	target Version
	// err is a configuration error found when the builder was created.
	// It is returned by Commit.
	err    error
	reset  bool
	keep   bool
	steps  []Step
	sealed bool
}

// ResetSequence makes the updater start a new sequence at zero, even if the
// latest registered updater belongs to the same release.
func (b *UpdaterBuilder) ResetSequence() *UpdaterBuilder {
	b.mustBeOpen()
	b.reset = true
	return b
}

// KeepSequence makes the updater share the sequence of the latest registered
// updater of the same release instead of incrementing it. Use it for
// updaters that logically belong to the same version.
func (b *UpdaterBuilder) KeepSequence() *UpdaterBuilder {
	b.mustBeOpen()
	b.keep = true
	return b
}

// Step appends a custom transformation.
func (b *UpdaterBuilder) Step(fn Step) *UpdaterBuilder {
	b.mustBeOpen()
	b.steps = append(b.steps, fn)
	return b
}

// Set assigns a value to the field under given path. Missing intermediate
// compounds are created.
func (b *UpdaterBuilder) Set(path string, value interface{}) *UpdaterBuilder {
	value = tag.Clone(value)
	return b.Step(func(m tag.Map) bool {
		if old, ok := m.GetPath(path); ok && tag.Equal(old, value) {
			return false
		}
		return m.SetPath(path, tag.Clone(value))
	})
}

// TryAdd assigns a value to the field under given path only if that field
// does not exist yet.
func (b *UpdaterBuilder) TryAdd(path string, value interface{}) *UpdaterBuilder {
	value = tag.Clone(value)
	return b.Step(func(m tag.Map) bool {
		if _, ok := m.GetPath(path); ok {
			return false
		}
		return m.SetPath(path, tag.Clone(value))
	})
}

// Remove deletes the field under given path.
func (b *UpdaterBuilder) Remove(path string) *UpdaterBuilder {
	return b.Step(func(m tag.Map) bool {
		return m.RemovePath(path)
	})
}

// Rename gives the field under given path a new name. The field stays within
// the same parent compound.
func (b *UpdaterBuilder) Rename(path, newName string) *UpdaterBuilder {
	return b.Step(func(m tag.Map) bool {
		return m.RenamePath(path, newName)
	})
}

// Edit replaces the value of an existing field with the result of fn. Fn is
// called only if the field exists and must return false if the value should
// be left untouched.
func (b *UpdaterBuilder) Edit(path string, fn func(old interface{}) (interface{}, bool)) *UpdaterBuilder {
	return b.Step(func(m tag.Map) bool {
		old, ok := m.GetPath(path)
		if !ok {
			return false
		}
		value, ok := fn(old)
		if !ok {
			return false
		}
		return m.SetPath(path, value)
	})
}

// Commit computes the version of the updater and inserts it into the
// registry. The builder cannot be used after a commit.
func (b *UpdaterBuilder) Commit() (*Updater, error) {
	if b.sealed {
		return nil, errors.Wrapf(errors.ErrState, "updater %s already committed", b.target)
	}
	if b.err != nil {
		return nil, b.err
	}
	u, err := b.reg.insert(b.target, b.reset, !b.keep, b.steps)
	if err != nil {
		return nil, err
	}
	b.sealed = true
	return u, nil
}

// MustCommit is like Commit but panics on error.
func (b *UpdaterBuilder) MustCommit() *Updater {
	u, err := b.Commit()
	if err != nil {
		panic(err)
	}
	return u
}

func (b *UpdaterBuilder) mustBeOpen() {
	if b.sealed {
		panic(errors.Wrapf(errors.ErrState, "updater %s already committed", b.target))
	}
}
