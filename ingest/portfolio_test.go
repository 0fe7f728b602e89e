package ingest

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/exposure"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestReadPortfolio(t *testing.T) {
	tests := []struct {
		name  string
		input string
		mode  exposure.Mode
		want  []exposure.PortfolioEntry
	}{
		{
			name:  "amounts",
			input: "ISIN,Amount\nIE00B4L5Y983,1200.50\n# sold\n#US0378331005,100\nUS0378331005,300\n",
			mode:  exposure.ModeAmount,
			want: []exposure.PortfolioEntry{
				{Line: 2, ISIN: "IE00B4L5Y983", Value: decimal.RequireFromString("1200.50")},
				{Line: 5, ISIN: "US0378331005", Value: decimal.NewFromInt(300)},
			},
		},
		{
			name:  "weights",
			input: "Weight,ISIN\n60,IE00B4L5Y983\n40, US0378331005\n",
			mode:  exposure.ModeWeight,
			want: []exposure.PortfolioEntry{
				{Line: 2, ISIN: "IE00B4L5Y983", Value: decimal.NewFromInt(60)},
				{Line: 3, ISIN: "US0378331005", Value: decimal.NewFromInt(40)},
			},
		},
		{
			name:  "weight wins over amount",
			input: "ISIN,Amount,Weight\nIE00B4L5Y983,1000,100\n",
			mode:  exposure.ModeWeight,
			want: []exposure.PortfolioEntry{
				{Line: 2, ISIN: "IE00B4L5Y983", Value: decimal.NewFromInt(100)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ReadPortfolio(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadPortfolio() error = %v", err)
			}
			if p.Mode != tt.mode {
				t.Errorf("ReadPortfolio() mode = %v, want %v", p.Mode, tt.mode)
			}
			if diff := cmp.Diff(tt.want, p.Entries); diff != "" {
				t.Errorf("ReadPortfolio() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadPortfolio_Header(t *testing.T) {
	for _, input := range []string{
		"ISIN,Value\nIE00B4L5Y983,100\n",
		"Amount\n100\n",
		"",
	} {
		if _, err := ReadPortfolio(strings.NewReader(input)); err == nil {
			t.Errorf("ReadPortfolio(%q) succeeded, want a header error", input)
		}
	}
}

func TestReadPortfolio_RowErrors(t *testing.T) {
	input := `ISIN,Weight
IE00B4L5Y983,sixty
US0378331005,140
,10
DE0007164600,20
`
	_, err := ReadPortfolio(strings.NewReader(input))
	if !errors.Is(err, exposure.ErrMalformedRow) {
		t.Fatalf("ReadPortfolio() error = %v, want %v", err, exposure.ErrMalformedRow)
	}

	// every defective row is reported.
	var lines []int
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var xe *exposure.Error
		if errors.As(e, &xe) {
			lines = append(lines, xe.Line)
		}
	}
	if want := []int{2, 3, 4}; !cmp.Equal(lines, want) {
		t.Errorf("ReadPortfolio() reported lines %v, want %v", lines, want)
	}
}
