package main

import (
	"flag"
	"fmt"
	"io"
)

func cmdCatalog(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
List all updaters known to this program in the order they are applied.
		`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	reg := newCatalog()
	for _, u := range reg.Updaters() {
		fmt.Fprintf(output, "%-12s %10d  %d steps\n", u.Version(), u.Version().Pack(), u.Steps())
	}
	_, err := fmt.Fprintf(output, "current %s\n", reg.CurrentVersion())
	return err
}
