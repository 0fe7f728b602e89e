package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/exposure"
	"github.com/etnz/exposure/ingest"
	"github.com/etnz/exposure/renderer"
	"github.com/google/subcommands"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	view       string
	lastWins   bool
	json       bool
	query      string
	portfolio  bool
	dimensions string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "compute the exposure of a portfolio" }
func (*analyzeCmd) Usage() string {
	return `xps analyze [-view <look-through|direct>] [-dimension <list>] [-json [-q <jsonpath>]] <securities.csv> <portfolio.csv>

  Computes the exposure of the portfolio by holding, sector, country, region
  and market, looking through the funds it holds.

  The securities table has the columns
  ISIN,Name,Ticker,TER,Holding,HoldingWeight,Sector,SectorWeight,Country,CountryWeight,Region,RegionWeight.
  The portfolio table has the columns ISIN,Amount or ISIN,Weight.

  See 'xps topic securities' and 'xps topic portfolio' for details.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", exposure.LookThrough.String(), "Holdings view: 'look-through' lists what funds hold, 'direct' lists the funds")
	f.StringVar(&c.dimensions, "dimension", "", "Comma separated dimensions to report among holding, sector, country, region and market, all by default")
	f.BoolVar(&c.lastWins, "last-wins", false, "Keep the last weight when a category is declared twice with different weights, instead of failing")
	f.BoolVar(&c.json, "json", false, "Output the report as JSON")
	f.StringVar(&c.query, "q", "", "JSONPath query applied to the JSON report, implies -json")
	f.BoolVar(&c.portfolio, "p", false, "Also list the portfolio securities with their weight and TER")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: analyze requires a securities file and a portfolio file")
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

	table, err := Classification()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading classification: %v\n", err)
		return subcommands.ExitFailure
	}
	rows, err := ingest.ReadSecuritiesFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading securities: %v\n", err)
		return subcommands.ExitFailure
	}
	p, err := ingest.ReadPortfolioFile(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	an, err := exposure.Analyze(rows, p.Entries, p.Mode, exposure.Options{
		Classification: table,
		Merge:          exposure.MergeOptions{LastWins: c.lastWins, Sectors: table},
		View:           view,
		Currency:       *currency,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	logWarnings(an.Warnings)

	if c.json || c.query != "" {
		data, err := reportJSON(an, c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := output("exposure.json", data); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	md := renderer.AnalysisMarkdown(an, renderer.Options{Limit: *limit, Dimensions: dims})
	if c.portfolio {
		md += "\n" + renderer.PortfolioMarkdown(an)
	}
	if err := output("exposure.md", []byte(md)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// reportJSON encodes the analysis, and applies the JSONPath query if any.
func reportJSON(an *exposure.Analysis, query string) ([]byte, error) {
	data, err := json.MarshalIndent(an, "", "  ")
	if err != nil {
		return nil, err
	}
	if query == "" {
		return data, nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	v, err := jsonpath.Get(query, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", query, err)
	}
	return json.MarshalIndent(v, "", "  ")
}
