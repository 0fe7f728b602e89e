// Package renderer renders analyses as Markdown reports.
package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/exposure"
)

const (
	// Unknown is the row for what is left unclassified in a dimension.
	Unknown = "Unknown"
	// Others is the row folding the categories beyond the limit.
	Others = "Others"
)

// Options tunes the reports.
type Options struct {
	// Limit is the maximum number of categories listed per dimension, the
	// smaller ones are folded into a single "Others" row. Zero lists them all.
	Limit int
	// Dimensions restricts the exposure sections to these dimensions. Empty
	// renders them all.
	Dimensions []exposure.Dimension
}

func (o Options) dimensions() []exposure.Dimension {
	if len(o.Dimensions) == 0 {
		return exposure.Dimensions[:]
	}
	return o.Dimensions
}

// Row is one line of an exposure table.
type Row struct {
	Label  string
	Weight exposure.Weight
}

// Rows returns the table rows of bd: categories by descending weight, then
// Others beyond the limit, then Unknown for what is left to reach 100%.
//
// label, if not nil, names the categories.
func Rows(bd *exposure.Breakdown, limit int, label func(string) string) []Row {
	var rows []Row
	var others exposure.Weight
	folded := 0
	for i, e := range bd.Sorted() {
		if limit > 0 && i >= limit {
			others = others.Add(e.Weight)
			folded++
			continue
		}
		name := e.Category
		if label != nil {
			name = label(e.Category)
		}
		rows = append(rows, Row{Label: name, Weight: e.Weight})
	}
	if folded > 0 {
		rows = append(rows, Row{Label: fmt.Sprintf("%s (%d)", Others, folded), Weight: others})
	}
	if rest := exposure.One().Sub(bd.Total()); rest.GreaterThan(exposure.W(0)) && !rest.Equal(exposure.W(0)) {
		rows = append(rows, Row{Label: Unknown, Weight: rest})
	}
	return rows
}

// dimensionTitles are the section titles of each dimension.
var dimensionTitles = map[exposure.Dimension]string{
	exposure.Holding: "Holdings",
	exposure.Sector:  "Sectors",
	exposure.Country: "Countries",
	exposure.Region:  "Regions",
	exposure.Market:  "Markets",
}

// Title returns the section title of d.
func Title(d exposure.Dimension) string { return dimensionTitles[d] }

// writeTable writes an exposure table. value, if not nil, adds a column with
// the amount of money exposed.
func writeTable(w io.Writer, header string, rows []Row, value func(exposure.Weight) string) {
	if value != nil {
		fmt.Fprintf(w, "| %s | Weight | Value | |\n", header)
		fmt.Fprintln(w, "|:---|---:|---:|:---|")
	} else {
		fmt.Fprintf(w, "| %s | Weight | |\n", header)
		fmt.Fprintln(w, "|:---|---:|:---|")
	}
	for _, r := range rows {
		if value != nil {
			fmt.Fprintf(w, "| %s | %s | %s | %s |\n", cell(r.Label), r.Weight, value(r.Weight), bar(r.Weight))
		} else {
			fmt.Fprintf(w, "| %s | %s | %s |\n", cell(r.Label), r.Weight, bar(r.Weight))
		}
	}
	fmt.Fprintln(w)
}

// writeWarnings writes the warnings section, if any.
func writeWarnings(w io.Writer, warnings []exposure.Warning) {
	ConditionalBlock(w, func(w io.Writer) bool {
		fmt.Fprint(w, "## Warnings\n\n")
		for _, warn := range warnings {
			fmt.Fprintf(w, "- %s\n", warn)
		}
		fmt.Fprintln(w)
		return len(warnings) > 0
	})
}

// securityLabel names holdings after the security they reference, when
// known.
func securityLabel(reg *exposure.Registry) func(string) string {
	return func(category string) string {
		if sec, ok := reg.Security(category); ok && sec.Name() != "" {
			return sec.Name()
		}
		return category
	}
}
