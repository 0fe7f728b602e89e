package ingest

import (
	"strings"
	"testing"

	"github.com/etnz/exposure"
	"github.com/google/go-cmp/cmp"
)

func TestReadSecurities(t *testing.T) {
	input := `ISIN,Name,Ticker,TER,Holding,HoldingWeight,Sector,SectorWeight,Country,CountryWeight,Region,RegionWeight
IE00B4L5Y983,iShares Core MSCI World,IWDA,0.20,US0378331005,4.5,Technology,25,United States,70,,
,,,,US5949181045,4.1,Financials,15,Japan,6,,

US0378331005,Apple Inc.,AAPL,,,,Technology,100,"United States",100,,
`
	got, err := ReadSecurities(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadSecurities() error = %v", err)
	}
	want := []exposure.RawRow{
		{Line: 2, ISIN: "IE00B4L5Y983", Name: "iShares Core MSCI World", Ticker: "IWDA", TER: "0.20",
			Holding: "US0378331005", HoldingWeight: "4.5", Sector: "Technology", SectorWeight: "25", Country: "United States", CountryWeight: "70"},
		{Line: 3, Holding: "US5949181045", HoldingWeight: "4.1", Sector: "Financials", SectorWeight: "15", Country: "Japan", CountryWeight: "6"},
		{Line: 5, ISIN: "US0378331005", Name: "Apple Inc.", Ticker: "AAPL", Sector: "Technology", SectorWeight: "100", Country: "United States", CountryWeight: "100"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadSecurities() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadSecurities_ColumnsByName(t *testing.T) {
	input := `country,countryweight,isin
# a comment
Germany,100,DE0007164600
Estonia,50
`
	got, err := ReadSecurities(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadSecurities() error = %v", err)
	}
	want := []exposure.RawRow{
		{Line: 3, ISIN: "DE0007164600", Country: "Germany", CountryWeight: "100"},
		{Line: 4, Country: "Estonia", CountryWeight: "50"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadSecurities() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadSecurities_Errors(t *testing.T) {
	tests := []struct {
		name, input string
	}{
		{"empty", ""},
		{"no ISIN column", "Name,Holding\nApple,\n"},
		{"bad quote", "ISIN,Name\nUS0378331005,\"Apple\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadSecurities(strings.NewReader(tt.input)); err == nil {
				t.Errorf("ReadSecurities(%q) succeeded, want an error", tt.input)
			}
		})
	}
}

func TestReadSecurities_IntoMerge(t *testing.T) {
	input := `ISIN,Name,TER,Holding,HoldingWeight
IE00B4L5Y983,World,0.2,US0378331005,60
,,,Others,40
US0378331005,Apple,,,
`
	rows, err := ReadSecurities(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadSecurities() error = %v", err)
	}
	reg, _, err := exposure.Merge(rows, exposure.MergeOptions{})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if got, want := reg.Len(), 2; got != want {
		t.Errorf("Merge() registry has %d securities, want %d", got, want)
	}
	sec, _ := reg.Security("IE00B4L5Y983")
	if got, want := sec.Breakdown(exposure.Holding).Categories(), []string{"US0378331005", "Others"}; !cmp.Equal(got, want) {
		t.Errorf("holdings = %v, want %v", got, want)
	}
	if got, want := sec.TER(), exposure.Percent(0.2); !got.Equal(want) {
		t.Errorf("TER = %v, want %v", got, want)
	}
}
