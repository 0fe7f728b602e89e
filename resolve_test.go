package exposure

import (
	"errors"
	"slices"
	"testing"
)

func TestResolve_Leaf(t *testing.T) {
	rows := []RawRow{
		{Line: 2, ISIN: apple, Name: "Apple", Sector: "Technology", SectorWeight: "100", Country: "USA", CountryWeight: "100"},
	}
	res := mustResolve(t, apple, rows...)

	checkBreakdown(t, "holdings", res.Breakdown(Holding), map[string]float64{apple: 1})
	checkBreakdown(t, "sectors", res.Breakdown(Sector), map[string]float64{"Technology": 1})
	checkBreakdown(t, "countries", res.Breakdown(Country), map[string]float64{"USA": 1})
	checkBreakdown(t, "regions", res.Breakdown(Region), map[string]float64{"North America": 1})
	checkBreakdown(t, "markets", res.Breakdown(Market), map[string]float64{"Developed": 1})
}

func TestResolve_LeafHoldings(t *testing.T) {
	// a fund whose holdings are not securities of the table resolves to itself.
	rows := []RawRow{
		{Line: 2, ISIN: emETF, Holding: "Tencent", HoldingWeight: "5", Country: "China", CountryWeight: "30"},
		{Line: 3, Holding: "Reliance", HoldingWeight: "3", Country: "India", CountryWeight: "20"},
	}
	res := mustResolve(t, emETF, rows...)
	checkBreakdown(t, "holdings", res.Breakdown(Holding), map[string]float64{"Tencent": 0.05, "Reliance": 0.03})
	checkBreakdown(t, "countries", res.Breakdown(Country), map[string]float64{"China": 0.3, "India": 0.2})
}

func TestResolve_Chain(t *testing.T) {
	// A -> B -> C with C a leaf.
	rows := []RawRow{
		{Line: 2, ISIN: allWorld, Holding: worldETF, HoldingWeight: "50"},
		{Line: 3, ISIN: worldETF, Holding: apple, HoldingWeight: "40", Country: "Germany", CountryWeight: "10"},
		{Line: 4, ISIN: apple, Country: "USA", CountryWeight: "100", Sector: "Technology", SectorWeight: "100"},
	}
	res := mustResolve(t, allWorld, rows...)

	checkBreakdown(t, "holdings", res.Breakdown(Holding), map[string]float64{apple: 0.2})
	checkBreakdown(t, "sectors", res.Breakdown(Sector), map[string]float64{"Technology": 0.2})
	checkBreakdown(t, "countries", res.Breakdown(Country), map[string]float64{"USA": 0.2, "Germany": 0.05})
	checkBreakdown(t, "regions", res.Breakdown(Region), map[string]float64{"North America": 0.2, "Europe": 0.05})
	checkBreakdown(t, "direct holdings", res.Holdings(Direct), map[string]float64{worldETF: 0.5})
}

func TestResolve_MergesFundsAndOwnClassification(t *testing.T) {
	rows := []RawRow{
		{Line: 2, ISIN: allWorld, Holding: worldETF, HoldingWeight: "80", Country: "USA", CountryWeight: "10"},
		{Line: 3, Holding: emETF, HoldingWeight: "10"},
		{Line: 4, Holding: "Cash", HoldingWeight: "10"},
		{Line: 5, ISIN: worldETF, Country: "USA", CountryWeight: "70"},
		{Line: 6, ISIN: emETF, Country: "China", CountryWeight: "100"},
	}
	res := mustResolve(t, allWorld, rows...)

	checkBreakdown(t, "countries", res.Breakdown(Country), map[string]float64{"USA": 0.1 + 0.8*0.7, "China": 0.1})
	checkBreakdown(t, "holdings", res.Breakdown(Holding), map[string]float64{worldETF: 0.8, emETF: 0.1, "Cash": 0.1})
	if got, want := res.Breakdown(Country).Categories(), []string{"USA", "China"}; !slices.Equal(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestResolve_Memoized(t *testing.T) {
	reg := mustMerge(t,
		RawRow{Line: 2, ISIN: allWorld, Holding: apple, HoldingWeight: "50"},
		RawRow{Line: 3, ISIN: worldETF, Holding: apple, HoldingWeight: "30"},
		RawRow{Line: 4, ISIN: apple, Country: "USA", CountryWeight: "100"},
	)
	r := NewResolver(reg)
	all, err := r.ResolveAll()
	if err != nil {
		t.Fatalf("ResolveAll() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ResolveAll() returned %d exposures, want 3", len(all))
	}
	again, err := r.Resolve(apple)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if again != all[apple] {
		t.Errorf("Resolve() did not reuse the cached exposure")
	}
}

func TestResolve_Cycle(t *testing.T) {
	testCases := []struct {
		name string
		rows []RawRow
		want []string
	}{
		{
			name: "two securities",
			rows: []RawRow{
				{Line: 2, ISIN: worldETF, Holding: allWorld, HoldingWeight: "50"},
				{Line: 3, ISIN: allWorld, Holding: worldETF, HoldingWeight: "50"},
			},
			want: []string{worldETF, allWorld, worldETF},
		},
		{
			name: "self reference",
			rows: []RawRow{
				{Line: 2, ISIN: worldETF, Holding: worldETF, HoldingWeight: "10"},
			},
			want: []string{worldETF, worldETF},
		},
		{
			name: "deep cycle",
			rows: []RawRow{
				{Line: 2, ISIN: worldETF, Holding: allWorld, HoldingWeight: "50"},
				{Line: 3, ISIN: allWorld, Holding: emETF, HoldingWeight: "50"},
				{Line: 4, ISIN: emETF, Holding: apple, HoldingWeight: "10"},
				{Line: 5, Holding: allWorld, HoldingWeight: "10"},
				{Line: 6, ISIN: apple, Country: "USA", CountryWeight: "100"},
			},
			want: []string{allWorld, emETF, allWorld},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg := mustMerge(t, tc.rows...)
			_, err := NewResolver(reg).Resolve(worldETF)
			e := asError(t, err, ErrCyclicFundReference)
			if !slices.Equal(e.Cycle, tc.want) {
				t.Errorf("Cycle = %v, want %v", e.Cycle, tc.want)
			}
		})
	}
}

func TestResolve_MissingReference(t *testing.T) {
	reg := mustMerge(t,
		RawRow{Line: 2, ISIN: worldETF, Holding: apple, HoldingWeight: "5"},
	)
	_, err := NewResolver(reg).Resolve(worldETF)
	e := asError(t, err, ErrMissingReferencedSecurity)
	if e.ISIN != worldETF || e.Category != apple {
		t.Errorf("got ISIN %q reference %q, want %q %q", e.ISIN, e.Category, worldETF, apple)
	}
}

func TestResolve_UnknownSecurity(t *testing.T) {
	reg := mustMerge(t, RawRow{Line: 2, ISIN: apple})
	_, err := NewResolver(reg).Resolve(alphabet)
	asError(t, err, ErrUnknownSecurity)
}

func TestResolve_MistypedReference(t *testing.T) {
	// IE00B4L5Y983 with a wrong check digit.
	const mistyped = "IE00B4L5Y984"
	reg := mustMerge(t,
		RawRow{Line: 2, ISIN: allWorld, Holding: mistyped, HoldingWeight: "60"},
		RawRow{Line: 3, ISIN: worldETF, Country: "USA", CountryWeight: "100"},
	)
	_, err := NewResolver(reg).Resolve(allWorld)
	e := asError(t, err, ErrMissingReferencedSecurity)
	if e.ISIN != allWorld || e.Category != mistyped {
		t.Errorf("got ISIN %q reference %q, want %q %q", e.ISIN, e.Category, allWorld, mistyped)
	}
	if e.Detail == "" {
		t.Errorf("Detail is empty, want the ISIN validation failure")
	}
}

func TestResolveAll_ReportsEveryError(t *testing.T) {
	reg := mustMerge(t,
		RawRow{Line: 2, ISIN: worldETF, Holding: apple, HoldingWeight: "50"},
		RawRow{Line: 3, ISIN: allWorld, Holding: microsoft, HoldingWeight: "50"},
		RawRow{Line: 4, ISIN: emETF, Holding: worldETF, HoldingWeight: "50"},
		RawRow{Line: 5, ISIN: sap, Holding: alphabet, HoldingWeight: "10"},
		RawRow{Line: 6, ISIN: alphabet, Holding: sap, HoldingWeight: "10"},
	)
	_, err := NewResolver(reg).ResolveAll()
	if err == nil {
		t.Fatal("ResolveAll() error = nil, want errors")
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("ResolveAll() error %v does not join errors", err)
	}

	var missing []string
	cycles := 0
	for _, e := range joined.Unwrap() {
		switch {
		case errors.Is(e, ErrMissingReferencedSecurity):
			missing = append(missing, asError(t, e, ErrMissingReferencedSecurity).Category)
		case errors.Is(e, ErrCyclicFundReference):
			cycles++
		default:
			t.Errorf("unexpected error %v", e)
		}
	}
	if want := []string{apple, microsoft}; !slices.Equal(missing, want) {
		t.Errorf("missing references = %v, want %v", missing, want)
	}
	if cycles != 1 {
		t.Errorf("got %d cycle errors, want 1", cycles)
	}
}
