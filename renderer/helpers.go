package renderer

import (
	"bytes"
	"io"
	"math"
	"strings"

	"github.com/etnz/exposure"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// barWidth is the number of characters of a 100% bar.
const barWidth = 20

// bar draws w as a horizontal bar of blocks.
func bar(w exposure.Weight) string {
	n := int(math.Round(w.Float64() * barWidth))
	if n < 0 {
		n = 0
	}
	return strings.Repeat("█", n)
}

// cell escapes s for a Markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
