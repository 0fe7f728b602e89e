package exposure

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ISINs used in tests, all valid.
const (
	worldETF  = "IE00B4L5Y983"
	allWorld  = "IE00BK5BQT80"
	emETF     = "IE00BKM4GZ66"
	apple     = "US0378331005"
	alphabet  = "US38259P5089"
	microsoft = "US5949181045"
	sap       = "DE0007164600"
)

// fixture is a ClassificationTable for tests: country -> {region, market}.
type fixture map[string][2]string

func (f fixture) RegionOf(country string) (string, error) {
	v, ok := f[country]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCountry, country)
	}
	return v[0], nil
}

func (f fixture) MarketOf(country string) (string, error) {
	v, ok := f[country]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCountry, country)
	}
	return v[1], nil
}

var classification = fixture{
	"USA":     {"North America", "Developed"},
	"Germany": {"Europe", "Developed"},
	"Estonia": {"Europe", "Developed"},
	"China":   {"Asia", "Emerging"},
	"India":   {"Asia", "Emerging"},
}

// mustMerge merges rows and fails the test on error.
func mustMerge(t *testing.T, rows ...RawRow) *Registry {
	t.Helper()
	reg, _, err := Merge(rows, MergeOptions{})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	return reg
}

// mustResolve merges rows, infers with the test classification and resolves isin.
func mustResolve(t *testing.T, isin string, rows ...RawRow) *ResolvedExposure {
	t.Helper()
	reg := mustMerge(t, rows...)
	if err := Infer(reg, classification); err != nil {
		t.Fatalf("Infer() error = %v", err)
	}
	res, err := NewResolver(reg).Resolve(isin)
	if err != nil {
		t.Fatalf("Resolve(%q) error = %v", isin, err)
	}
	return res
}

// fractions converts a breakdown to a plain map for comparisons.
func fractions(b *Breakdown) map[string]float64 {
	m := make(map[string]float64)
	for c, w := range b.All() {
		m[c] = w.Float64()
	}
	return m
}

// checkBreakdown compares a breakdown to the expected fractions.
func checkBreakdown(t *testing.T, name string, got *Breakdown, want map[string]float64) {
	t.Helper()
	if diff := cmp.Diff(want, fractions(got), cmpopts.EquateApprox(0, 1e-9), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

// asError extracts the *Error of kind from err.
func asError(t *testing.T, err, kind error) *Error {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("error = %v, want %v", err, kind)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not an *Error", err)
	}
	return e
}

// codes returns the codes of warnings.
func codes(warnings []Warning) []WarningCode {
	var c []WarningCode
	for _, w := range warnings {
		c = append(c, w.Code)
	}
	return c
}
