package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/exposure"
	"github.com/etnz/exposure/ingest"
	"github.com/etnz/exposure/renderer"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	lastWins bool
	strict   bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the securities and portfolio tables" }
func (*checkCmd) Usage() string {
	return `xps check [-strict] <securities.csv> [<portfolio.csv>]

  Reads the tables and reports every error and warning found, then shows how
  much of each security is classified in each dimension.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.lastWins, "last-wins", false, "Keep the last weight when a category is declared twice with different weights, instead of failing")
	f.BoolVar(&c.strict, "strict", false, "Fail on warnings too")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Error: check requires a securities file and optionally a portfolio file")
		return subcommands.ExitUsageError
	}

	reg, warnings, err := DecodeRegistry(f.Arg(0), exposure.MergeOptions{LastWins: c.lastWins})
	if err != nil {
		printErrors(err)
		return subcommands.ExitFailure
	}
	if _, err := exposure.NewResolver(reg).ResolveAll(); err != nil {
		printErrors(err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 2 {
		p, err := ingest.ReadPortfolioFile(f.Arg(1))
		if err != nil {
			printErrors(err)
			return subcommands.ExitFailure
		}
		_, more, err := exposure.Normalize(p.Entries, p.Mode, reg, *currency)
		if err != nil {
			printErrors(err)
			return subcommands.ExitFailure
		}
		warnings = append(warnings, more...)
	}

	if err := output("check.md", []byte(renderer.RegistryMarkdown(reg, warnings))); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.strict && len(warnings) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printErrors prints each joined error on its own line.
func printErrors(err error) {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	for _, e := range joined.Unwrap() {
		fmt.Fprintf(os.Stderr, "Error: %v\n", e)
	}
}
