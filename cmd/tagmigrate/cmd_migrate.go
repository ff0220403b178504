package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/tagupdater"
	"github.com/iov-one/tagupdater/errors"
	"github.com/tendermint/tendermint/libs/log"
)

func cmdMigrate(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Read records from the input, migrate each of them to the current schema
version and write them to the output.

Records are read as a stream of JSON objects (one per line) or as a stream of
YAML documents. Output is written in the same format.
		`)
		fl.PrintDefaults()
	}
	var (
		formatFl = fl.String("format", formatJSON, "Record format, json or yaml.")
		fieldFl  = fl.String("field", tagupdater.DefaultVersionField, "Name of the record field holding the schema version.")
		fromFl   = fl.String("from", "", "Recorded version of all records. By default it is read from each record.")
		fieldsFl = fl.Bool("fields", false, "Migrate fields only, do not write the version field.")
		debugFl  = fl.Bool("debug", false, "Log every migrated record.")
	)
	fl.Parse(args)

	codec, err := newRecordCodec(*formatFl, input, output)
	if err != nil {
		return err
	}

	var from *tagupdater.Version
	if *fromFl != "" {
		v, err := tagupdater.ParseVersion(*fromFl)
		if err != nil {
			return errors.Wrap(err, "invalid from version")
		}
		from = &v
	}

	reg := newCatalog(
		tagupdater.WithLogger(newLogger(os.Stderr, *debugFl)),
		tagupdater.WithVersionField(*fieldFl),
	)

	for n := 0; ; n++ {
		rec, err := codec.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "cannot read record %d", n)
		}

		recorded := reg.RecordedVersion(rec)
		if from != nil {
			recorded = *from
		}
		if *fieldsFl {
			rec = reg.MigrateFields(rec, recorded)
		} else {
			rec = reg.Migrate(rec, recorded)
		}

		if err := codec.Write(rec); err != nil {
			return errors.Wrapf(err, "cannot write record %d", n)
		}
	}
}

func newLogger(w io.Writer, debug bool) log.Logger {
	logger := log.NewTMLogger(log.NewSyncWriter(w)).With("module", "tagmigrate")
	if debug {
		return log.NewFilter(logger, log.AllowDebug())
	}
	return log.NewFilter(logger, log.AllowInfo())
}
