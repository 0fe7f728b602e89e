package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/exposure"
)

// AnalysisMarkdown renders the exposure report of a portfolio: a summary,
// one table per dimension and the warnings.
//
// Dimensions with nothing classified are omitted.
func AnalysisMarkdown(an *exposure.Analysis, opts Options) string {
	var b strings.Builder
	result := an.Result

	fmt.Fprint(&b, "# Portfolio Exposure\n\n")
	fmt.Fprintf(&b, "- Securities: %d\n", an.Portfolio.Len())
	total, hasTotal := result.Total()
	if hasTotal {
		fmt.Fprintf(&b, "- Total: %s\n", total)
	}
	fmt.Fprintf(&b, "- TER: %s\n", an.TER)
	fmt.Fprintf(&b, "- Holdings: %s\n\n", result.View())

	var value func(exposure.Weight) string
	if hasTotal {
		value = func(w exposure.Weight) string { return total.Mul(w).String() }
	}

	for _, d := range opts.dimensions() {
		ConditionalBlock(&b, func(w io.Writer) bool {
			bd := result.Breakdown(d)
			var label func(string) string
			if d == exposure.Holding {
				label = securityLabel(an.Registry)
			}
			fmt.Fprintf(w, "## %s\n\n", Title(d))
			writeTable(w, singular(d), Rows(bd, opts.Limit, label), value)
			return !bd.IsEmpty()
		})
	}

	writeWarnings(&b, an.Warnings)
	return b.String()
}

// PortfolioMarkdown renders the normalized portfolio: each security with its
// weight, amount and TER.
func PortfolioMarkdown(an *exposure.Analysis) string {
	var b strings.Builder
	p := an.Portfolio

	fmt.Fprint(&b, "# Portfolio\n\n")
	_, hasTotal := p.Total()
	if hasTotal {
		fmt.Fprintln(&b, "| ISIN | Name | Weight | Amount | TER |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	} else {
		fmt.Fprintln(&b, "| ISIN | Name | Weight | TER |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	}
	for isin, w := range p.Holdings() {
		sec, _ := an.Registry.Security(isin)
		if amount, ok := p.Amount(isin); ok {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", isin, cell(sec.Name()), w, amount, sec.TER())
		} else {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", isin, cell(sec.Name()), w, sec.TER())
		}
	}
	if total, ok := p.Total(); ok {
		fmt.Fprintf(&b, "| **%s** | | | **%s** | **%s** |\n", "Total", total, an.TER)
	} else {
		fmt.Fprintf(&b, "| **%s** | | | **%s** |\n", "Total", an.TER)
	}
	return b.String()
}

// singular is the column header of d.
func singular(d exposure.Dimension) string {
	s := d.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
