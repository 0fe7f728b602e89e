package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/exposure"
)

// SecurityMarkdown renders one security: its own declaration and its
// resolved exposure.
func SecurityMarkdown(reg *exposure.Registry, sec *exposure.Security, res *exposure.ResolvedExposure, view exposure.HoldingView, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", cell(sec.Label()))
	fmt.Fprintf(&b, "- ISIN: %s\n", sec.ISIN())
	if sec.Ticker() != "" {
		fmt.Fprintf(&b, "- Ticker: %s\n", sec.Ticker())
	}
	fmt.Fprintf(&b, "- TER: %s\n", sec.TER())
	fmt.Fprintf(&b, "- Holdings: %s\n\n", view)

	label := securityLabel(reg)
	for _, d := range opts.dimensions() {
		ConditionalBlock(&b, func(w io.Writer) bool {
			bd := res.Breakdown(d)
			l := func(s string) string { return s }
			if d == exposure.Holding {
				bd, l = res.Holdings(view), label
			}
			fmt.Fprintf(w, "## %s\n\n", Title(d))
			writeTable(w, singular(d), Rows(bd, opts.Limit, l), nil)
			return !bd.IsEmpty()
		})
	}
	return b.String()
}

// RegistryMarkdown renders how much of each security is classified in each
// dimension, before any look-through, and the warnings raised while reading
// the table.
func RegistryMarkdown(reg *exposure.Registry, warnings []exposure.Warning) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Securities\n\n")
	fmt.Fprint(&b, "| ISIN | Name | TER |")
	for _, d := range exposure.Dimensions {
		fmt.Fprintf(&b, " %s |", Title(d))
	}
	fmt.Fprint(&b, "\n|:---|:---|---:|")
	for range exposure.Dimensions {
		fmt.Fprint(&b, "---:|")
	}
	fmt.Fprintln(&b)

	for sec := range reg.Securities() {
		fmt.Fprintf(&b, "| %s | %s | %s |", sec.ISIN(), cell(sec.Name()), sec.TER())
		for _, d := range exposure.Dimensions {
			bd := sec.Breakdown(d)
			if bd.IsEmpty() {
				fmt.Fprint(&b, " - |")
				continue
			}
			fmt.Fprintf(&b, " %s |", bd.Total())
		}
		fmt.Fprintln(&b)
	}
	fmt.Fprintln(&b)

	writeWarnings(&b, warnings)
	return b.String()
}
