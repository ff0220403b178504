/*
Package tagupdater migrates schema versioned tag records.

A record is a tag.Compound stamped with a Version in its "version" field. The
schema history is described by a Registry of updaters. Each updater belongs to
a release (major.minor.patch) and carries an ordered list of transformation
steps. Several updaters can belong to one release; they are told apart by the
version sequence, assigned when an updater is committed.

Register all updaters at program startup, in release order:

	reg := tagupdater.NewRegistry()
	reg.Register(1, 16, 0).
		Rename("states.colour", "color").
		MustCommit()
	reg.Register(1, 16, 0).
		TryAdd("states.facing", "north").
		MustCommit()

Then bring records to the current schema:

	rec = reg.Migrate(rec, recordedVersion)

Migrate applies every updater with a version equal to or greater than the
recorded one, so a record never receives an updater it already has. A record
that needs no change is returned as it is, without being copied.
*/
package tagupdater
