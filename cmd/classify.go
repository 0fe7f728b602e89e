package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/exposure/renderer"
	"github.com/google/subcommands"
)

// classifyCmd holds the flags for the 'classify' subcommand.
type classifyCmd struct {
	sector bool
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "show the country and sector classification" }
func (*classifyCmd) Usage() string {
	return `xps classify [-s] [<name>...]

  Without names, displays the whole classification table: the region and
  market of every country, and the canonical sectors.

  With names, classifies each country, or each sector with -s.
`
}

func (c *classifyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.sector, "s", false, "classify sector names instead of countries")
}

func (c *classifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := Classification()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading classification: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		if err := output("classification.md", []byte(renderer.ClassificationMarkdown(table))); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	status := subcommands.ExitSuccess
	for _, name := range f.Args() {
		if c.sector {
			sector, err := table.SectorOf(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				status = subcommands.ExitFailure
				continue
			}
			fmt.Printf("%s: %s\n", name, sector)
			continue
		}
		country, ok := table.Country(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown country %q\n", name)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s: %s, %s\n", name, country.Region, country.Market)
	}
	return status
}
