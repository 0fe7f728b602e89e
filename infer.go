package exposure

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ClassificationTable maps countries to their region and market.
type ClassificationTable interface {
	// RegionOf returns the region of country, or an error wrapping ErrUnknownCountry.
	RegionOf(country string) (string, error)
	// MarketOf returns the market classification of country, or an error wrapping ErrUnknownCountry.
	MarketOf(country string) (string, error)
}

// Infer completes the region and market breakdowns of every security that
// has none, from its country breakdown. Securities without countries are left
// unclassified.
//
// Infer only fills empty breakdowns, running it twice is the same as once.
func Infer(reg *Registry, table ClassificationTable) error {
	for sec := range reg.Securities() {
		if err := sec.infer(Region, table.RegionOf); err != nil {
			return err
		}
		if err := sec.infer(Market, table.MarketOf); err != nil {
			return err
		}
	}
	return nil
}

// infer fills the breakdown d mapping each country through lookup.
func (s *Security) infer(d Dimension, lookup func(string) (string, error)) error {
	target := s.breakdown(d)
	countries := s.breakdown(Country)
	if !target.IsEmpty() || countries.IsEmpty() {
		return nil
	}

	var inferred Breakdown
	for country, w := range countries.All() {
		category, err := lookup(country)
		if errors.Is(err, ErrUnknownCountry) {
			return &Error{Kind: ErrUnknownCountry, ISIN: s.isin, Dimension: Country, Category: country, Detail: fmt.Sprintf("no %s defined", d)}
		}
		if err != nil {
			return fmt.Errorf("cannot classify %q in %s: %w", country, s.isin, err)
		}
		inferred.Add(category, w)
	}
	*target = inferred

	logrus.WithFields(logrus.Fields{"isin": s.isin, "dimension": d}).Tracef("inferred %v", target.Entries())
	return nil
}
