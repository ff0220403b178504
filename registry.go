package tagupdater

import (
	"sort"

	"github.com/google/btree"
	"github.com/iov-one/tagupdater/errors"
	"github.com/iov-one/tagupdater/tag"
	"github.com/tendermint/tendermint/libs/log"
)

// DefaultVersionField is the name of the top level record field that holds
// the packed schema version.
const DefaultVersionField = "version"

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used by the registry. By default nothing is
// logged.
func WithLogger(l log.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// WithVersionField changes the name of the record field holding the schema
// version.
func WithVersionField(name string) Option {
	return func(r *Registry) {
		r.field = name
	}
}

// Registry is the catalog of updaters, always ordered by version.
//
// All updaters must be registered before the first migration. Once
// registration is done, a registry is safe for concurrent migrations. Mixing
// registration with migrations requires external synchronization.
type Registry struct {
	tree *btree.BTree
	// updaters is the sorted content of the tree, republished after each
	// insert so that migrations can select updaters without allocating.
	updaters []*Updater
	ordinal  uint64
	field    string
	logger   log.Logger
}

// NewRegistry returns an empty registry. Its current version is the zero
// version.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		tree:   btree.New(2),
		field:  DefaultVersionField,
		logger: log.NewNopLogger(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Register starts a new updater for given release. The returned builder
// must be committed for the updater to become part of the registry.
//
// Updaters are expected to be committed in release order. The sequence of a
// new updater continues the sequence of the highest registered updater if it
// belongs to the same release, and starts at zero otherwise.
func (r *Registry) Register(major, minor, patch int) *UpdaterBuilder {
	target, err := MakeVersion(major, minor, patch)
	if err != nil {
		err = errors.Wrap(err, "register updater")
	}
	return &UpdaterBuilder{
		reg:    r,
		target: target,
		err:    err,
	}
}

func (r *Registry) insert(target Version, reset, bump bool, steps []Step) (*Updater, error) {
	prev := r.latest()

	var seq uint8
	if !reset && prev != nil && prev.version.Base() == target {
		seq = prev.version.Sequence
		if bump {
			if seq == MaxComponent {
				return nil, errors.Wrapf(errors.ErrOverflow, "no sequence left for release %s", target)
			}
			seq++
		}
	}
	version, err := Merge(target, seq)
	if err != nil {
		return nil, err
	}

	if prev != nil && target.Less(prev.version.Base()) {
		// Sequence continuation only looks at the highest updater, so
		// registering out of order can assign a different sequence
		// than registering in order would.
		r.logger.Info("out of order updater registration",
			"version", version.String(), "latest", prev.version.String())
	}

	r.ordinal++
	u := &Updater{
		version: version,
		steps:   append([]Step(nil), steps...),
		ordinal: r.ordinal,
	}
	r.tree.ReplaceOrInsert(u)
	r.publish()

	r.logger.Debug("updater registered", "version", version.String(), "steps", len(u.steps))
	return u, nil
}

// publish rebuilds the sorted updater list. A new slice is created each time
// so that previously returned lists stay valid.
func (r *Registry) publish() {
	updaters := make([]*Updater, 0, r.tree.Len())
	r.tree.Ascend(func(i btree.Item) bool {
		updaters = append(updaters, i.(*Updater))
		return true
	})
	r.updaters = updaters
}

func (r *Registry) latest() *Updater {
	if it := r.tree.Max(); it != nil {
		return it.(*Updater)
	}
	return nil
}

// CurrentVersion returns the version of the highest registered updater or
// the zero version if the registry is empty.
func (r *Registry) CurrentVersion() Version {
	if u := r.latest(); u != nil {
		return u.version
	}
	return Version{}
}

// Len returns the number of registered updaters.
func (r *Registry) Len() int {
	return len(r.updaters)
}

// Updaters returns all registered updaters in ascending version order.
func (r *Registry) Updaters() []*Updater {
	return append([]*Updater(nil), r.updaters...)
}

// Pending returns updaters that must be applied to a record stamped with
// given version, in the order they must be applied. These are all updaters
// with a version equal to or greater than the recorded one.
//
// Returned slice is shared and must not be modified.
func (r *Registry) Pending(recorded Version) []*Updater {
	i := sort.Search(len(r.updaters), func(i int) bool {
		return !r.updaters[i].version.Less(recorded)
	})
	return r.updaters[i:]
}

// Migrate brings given record to the current version and stamps it with
// that version.
//
// A record that requires no change and already carries the current version
// is returned as it is. If only the stamp is outdated, a copy with the
// version field rewritten is returned.
func (r *Registry) Migrate(rec tag.Compound, recorded Version) tag.Compound {
	latest := r.CurrentVersion()
	working, changed := r.apply(rec, recorded)
	if !changed {
		if recorded == latest {
			return rec
		}
		return rec.With(r.field, packField(latest))
	}
	working.Set(r.field, packField(latest))
	return working.Freeze()
}

// MigrateFields applies missing updaters like Migrate does, but never
// writes the version field. Use it for nested records whose version is
// tracked elsewhere.
func (r *Registry) MigrateFields(rec tag.Compound, recorded Version) tag.Compound {
	working, changed := r.apply(rec, recorded)
	if !changed {
		return rec
	}
	return working.Freeze()
}

// MigrateRecord is like Migrate, but the recorded version is read from the
// record's version field.
func (r *Registry) MigrateRecord(rec tag.Compound) tag.Compound {
	return r.Migrate(rec, r.RecordedVersion(rec))
}

// RecordedVersion returns the version stamped on given record. A record
// without a version field is at the zero version.
func (r *Registry) RecordedVersion(rec tag.Compound) Version {
	n, ok := rec.GetInt(r.field)
	if !ok {
		return Version{}
	}
	return Unpack(uint32(n))
}

// apply runs all pending updaters against a mutable copy of given record.
// The copy is created only if at least one updater is pending. It returns
// false if no step changed the record, in which case the copy must be
// discarded.
func (r *Registry) apply(rec tag.Compound, recorded Version) (tag.Map, bool) {
	pending := r.Pending(recorded)
	if len(pending) == 0 {
		return nil, false
	}

	working := rec.ToMutable()
	var changed bool
	for _, u := range pending {
		if u.Apply(working) {
			changed = true
		}
	}
	if !changed {
		return nil, false
	}

	r.logger.Debug("record migrated",
		"from", recorded.String(), "to", r.CurrentVersion().String(), "updaters", len(pending))
	return working, true
}

// packField returns the version as stored in a record: the packed form in a
// 32 bit signed integer.
func packField(v Version) int32 {
	return int32(v.Pack())
}
