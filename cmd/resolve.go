package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/exposure"
	"github.com/etnz/exposure/renderer"
	"github.com/google/subcommands"
)

// resolveCmd holds the flags for the 'resolve' subcommand.
type resolveCmd struct {
	view       string
	dimensions string
}

func (*resolveCmd) Name() string     { return "resolve" }
func (*resolveCmd) Synopsis() string { return "show the look-through exposure of securities" }
func (*resolveCmd) Usage() string {
	return `xps resolve [-view <look-through|direct>] [-dimension <list>] <securities.csv> <ISIN>...

  Displays the exposure of each security on its own, every fund it holds
  replaced by what that fund holds.
`
}

func (c *resolveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", exposure.LookThrough.String(), "Holdings view: 'look-through' lists what funds hold, 'direct' lists the funds")
	f.StringVar(&c.dimensions, "dimension", "", "Comma separated dimensions to report among holding, sector, country, region and market, all by default")
}

func (c *resolveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: resolve requires a securities file and at least one ISIN")
		return subcommands.ExitUsageError
	}
	view, err := exposure.ParseHoldingView(c.view)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -view: %v\n", err)
		return subcommands.ExitUsageError
	}
	dims, err := parseDimensions(c.dimensions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -dimension: %v\n", err)
		return subcommands.ExitUsageError
	}

	reg, warnings, err := DecodeRegistry(f.Arg(0), exposure.MergeOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading securities: %v\n", err)
		return subcommands.ExitFailure
	}
	logWarnings(warnings)

	resolver := exposure.NewResolver(reg)
	var reports []string
	for _, isin := range f.Args()[1:] {
		res, err := resolver.Resolve(isin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving %s: %v\n", isin, err)
			return subcommands.ExitFailure
		}
		sec, _ := reg.Security(isin)
		reports = append(reports, renderer.SecurityMarkdown(reg, sec, res, view, renderer.Options{Limit: *limit, Dimensions: dims}))
	}

	if err := output("resolve.md", []byte(strings.Join(reports, "\n"))); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
