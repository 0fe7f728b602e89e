package exposure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// RawRow is one line of the securities table, split into fields but not yet
// interpreted. Weights are percentages.
//
// A row with an empty ISIN continues the security of the previous row, so a
// security can list many holdings, sectors or countries over several rows.
type RawRow struct {
	Line int // line number in the source, for diagnostics

	ISIN   string
	Name   string
	Ticker string
	TER    string

	Holding       string
	HoldingWeight string
	Sector        string
	SectorWeight  string
	Country       string
	CountryWeight string
	Region        string
	RegionWeight  string
}

// pair returns the (category, weight) fields of the row for d.
func (r RawRow) pair(d Dimension) (category, weight string) {
	switch d {
	case Holding:
		return r.Holding, r.HoldingWeight
	case Sector:
		return r.Sector, r.SectorWeight
	case Country:
		return r.Country, r.CountryWeight
	case Region:
		return r.Region, r.RegionWeight
	}
	return "", ""
}

// rowDimensions are the breakdowns a securities table can declare.
var rowDimensions = []Dimension{Holding, Sector, Country, Region}

// SectorTable canonicalizes sector names.
type SectorTable interface {
	// SectorOf returns the canonical name of sector, or an error wrapping
	// ErrUnknownSector.
	SectorOf(sector string) (string, error)
}

// MergeOptions tunes Merge.
type MergeOptions struct {
	// LastWins accepts conflicting weights for the same category: the last
	// one is kept and a warning is raised instead of an error.
	LastWins bool
	// Sectors, if not nil, canonicalizes every sector name.
	Sectors SectorTable
}

// Merge folds the rows of a securities table into a registry of securities.
//
// Name, ticker and TER are taken from the first row that supplies them. Each
// row adds at most one category to each breakdown. Every defective row is
// reported, the returned error joins them all.
func Merge(rows []RawRow, opts MergeOptions) (*Registry, []Warning, error) {
	reg := NewRegistry()
	var warnings []Warning
	var errs []error
	declared := make(map[declaration]Weight)

	var current *Security
	for _, row := range rows {
		isin := strings.TrimSpace(row.ISIN)
		switch {
		case isin != "":
			sec, ok := reg.Security(isin)
			if !ok {
				sec = newSecurity(isin)
				reg.add(sec)
			}
			current = sec
		case current == nil:
			errs = append(errs, &Error{Kind: ErrMalformedRow, Line: row.Line, Detail: "continuation row without a preceding ISIN"})
			continue
		}

		if err := current.fill(row); err != nil {
			errs = append(errs, err)
		}

		for _, d := range rowDimensions {
			w, err := current.merge(row, d, opts, declared)
			if err != nil {
				errs = append(errs, err)
			}
			if w != nil {
				warnings = append(warnings, *w)
			}
		}
	}
	if len(errs) > 0 {
		return nil, nil, errors.Join(errs...)
	}

	for sec := range reg.Securities() {
		if err := ValidateISIN(sec.isin); err != nil {
			warnings = append(warnings, Warning{Code: WarnInvalidISIN, ISIN: sec.isin, Message: err.Error()})
		}
		for _, d := range rowDimensions {
			if total := sec.breakdown(d).Total(); total.Exceeds(One()) {
				warnings = append(warnings, Warning{
					Code:      WarnBreakdownOverflow,
					ISIN:      sec.isin,
					Dimension: d.String(),
					Message:   fmt.Sprintf("weights sum to %s", total),
				})
			}
		}
	}
	logrus.WithField("securities", reg.Len()).Debug("merged securities table")
	return reg, warnings, nil
}

// fill sets the descriptive fields not yet known.
func (s *Security) fill(row RawRow) error {
	if s.name == "" {
		s.name = strings.TrimSpace(row.Name)
	}
	if s.ticker == "" {
		s.ticker = strings.TrimSpace(row.Ticker)
	}
	ter := strings.TrimSpace(row.TER)
	if s.hasTER || ter == "" {
		return nil
	}
	v, err := decimal.NewFromString(ter)
	if err != nil || v.IsNegative() {
		return &Error{Kind: ErrMalformedRow, Line: row.Line, ISIN: s.isin, Detail: fmt.Sprintf("invalid TER %q", row.TER)}
	}
	s.ter, s.hasTER = Percent(v.InexactFloat64()), true
	return nil
}

// declaration identifies a category declared for a security, including
// declarations at zero weight.
type declaration struct {
	isin      string
	dimension Dimension
	category  string
}

// merge adds the (category, weight) pair of row for dimension d. declared
// holds the weights seen so far.
func (s *Security) merge(row RawRow, d Dimension, opts MergeOptions, declared map[declaration]Weight) (*Warning, error) {
	category, weight := row.pair(d)
	category, weight = strings.TrimSpace(category), strings.TrimSpace(weight)
	switch {
	case category == "" && weight == "":
		return nil, nil
	case category == "":
		return nil, &Error{Kind: ErrMalformedRow, Line: row.Line, ISIN: s.isin, Detail: fmt.Sprintf("%s weight %q without %s", d, weight, d)}
	case weight == "":
		return nil, &Error{Kind: ErrMalformedRow, Line: row.Line, ISIN: s.isin, Dimension: d, Category: category, Detail: "missing weight"}
	}

	w, err := ParsePercent(weight)
	if err != nil || w.IsNegative() {
		return nil, &Error{Kind: ErrMalformedRow, Line: row.Line, ISIN: s.isin, Dimension: d, Category: category, Detail: fmt.Sprintf("invalid weight %q", weight)}
	}
	if d == Sector && opts.Sectors != nil {
		canonical, err := opts.Sectors.SectorOf(category)
		if err != nil {
			return nil, &Error{Kind: ErrUnknownSector, Line: row.Line, ISIN: s.isin, Dimension: d, Category: category}
		}
		category = canonical
	}

	key := declaration{isin: s.isin, dimension: d, category: category}
	prev, ok := declared[key]
	var warning *Warning
	switch {
	case !ok:
	case prev.Equal(w):
		return nil, nil
	case opts.LastWins:
		warning = &Warning{
			Code:      WarnDuplicateCategory,
			ISIN:      s.isin,
			Dimension: d.String(),
			Message:   fmt.Sprintf("%q at line %d replaces %s by %s", category, row.Line, prev, w),
		}
	default:
		return nil, &Error{Kind: ErrDuplicateCategory, Line: row.Line, ISIN: s.isin, Dimension: d, Category: category, Detail: fmt.Sprintf("%s conflicts with %s", w, prev)}
	}
	declared[key] = w

	// a zero weight declares the category absent.
	if bd := s.breakdown(d); w.IsZero() {
		bd.remove(category)
	} else {
		bd.set(category, w)
	}
	return warning, nil
}
