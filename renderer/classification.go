package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/exposure/classification"
)

// ClassificationMarkdown renders the classification table: the region and
// market of every country, and the canonical sectors.
func ClassificationMarkdown(t *classification.Table) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Classification\n\n")
	fmt.Fprint(&b, "## Countries\n\n")
	fmt.Fprintln(&b, "| Country | Region | Market |")
	fmt.Fprintln(&b, "|:---|:---|:---|")
	for _, name := range t.Countries() {
		c, _ := t.Country(name)
		fmt.Fprintf(&b, "| %s | %s | %s |\n", cell(name), cell(c.Region), cell(c.Market))
	}
	fmt.Fprintln(&b)

	fmt.Fprint(&b, "## Sectors\n\n")
	for _, s := range t.Sectors() {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	return b.String()
}
