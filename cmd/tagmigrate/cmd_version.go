package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/tagupdater"
	"github.com/iov-one/tagupdater/errors"
)

func cmdPack(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the packed integer form of a version, as stored in the version field of
a record.
		`)
		fl.PrintDefaults()
	}
	var (
		majorFl = fl.Int("major", 0, "Major release number (0-255).")
		minorFl = fl.Int("minor", 0, "Minor release number (0-255).")
		patchFl = fl.Int("patch", 0, "Patch release number (0-255).")
		seqFl   = fl.Uint("seq", 0, "Sequence number (0-255).")
	)
	fl.Parse(args)

	base, err := tagupdater.MakeVersion(*majorFl, *minorFl, *patchFl)
	if err != nil {
		return errors.Wrap(err, "invalid release")
	}
	if *seqFl > tagupdater.MaxComponent {
		return errors.Field("seq", errors.ErrOverflow, "must not be greater than %d", tagupdater.MaxComponent)
	}
	v, err := tagupdater.Merge(base, uint8(*seqFl))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(output, "%d\n", v.Pack())
	return err
}

func cmdUnpack(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print major, minor, patch and sequence of a version. Version is given as the
first argument, either packed (decimal or 0x prefixed) or in the
major.minor.patch[-sequence] notation.
		`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	if fl.NArg() != 1 {
		return errors.Wrapf(errors.ErrInput, "exactly one version argument is required, got %d", fl.NArg())
	}
	v, err := tagupdater.ParseVersion(fl.Arg(0))
	if err != nil {
		return errors.Wrap(err, "cannot parse version")
	}
	_, err = fmt.Fprintf(output, "%d %d %d %d\n", v.Major, v.Minor, v.Patch, v.Sequence)
	return err
}
