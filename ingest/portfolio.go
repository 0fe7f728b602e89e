package ingest

import (
	"errors"
	"fmt"
	"io"

	"github.com/etnz/exposure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Portfolio table columns. A portfolio table has either a Weight or an
// Amount column.
const (
	ColWeight = "Weight"
	ColAmount = "Amount"
)

// Portfolio is a portfolio table as read.
type Portfolio struct {
	Mode    exposure.Mode
	Entries []exposure.PortfolioEntry
}

var hundred = decimal.NewFromInt(100)

// ReadPortfolio reads a portfolio table.
//
// The mode is Weight if the header has a Weight column, Amount otherwise.
// Weights are percentages and cannot exceed 100. Every defective row is
// reported, the returned error joins them all.
func ReadPortfolio(r io.Reader) (*Portfolio, error) {
	t, err := newTable(r)
	if err != nil {
		return nil, err
	}
	if err := t.require(ColISIN); err != nil {
		return nil, err
	}

	p := new(Portfolio)
	column := ColWeight
	switch {
	case t.has(ColWeight):
		p.Mode = exposure.ModeWeight
	case t.has(ColAmount):
		p.Mode, column = exposure.ModeAmount, ColAmount
	default:
		return nil, fmt.Errorf("missing column %s or %s in header", ColWeight, ColAmount)
	}

	var errs []error
	for {
		rec, err := t.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if rec.blank() {
			continue
		}

		isin, raw := rec.get(ColISIN), rec.get(column)
		if isin == "" {
			errs = append(errs, &exposure.Error{Kind: exposure.ErrMalformedRow, Line: rec.line, Detail: "missing ISIN"})
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			errs = append(errs, &exposure.Error{Kind: exposure.ErrMalformedRow, Line: rec.line, ISIN: isin, Detail: fmt.Sprintf("invalid %s %q", column, raw)})
			continue
		}
		if p.Mode == exposure.ModeWeight && value.GreaterThan(hundred) {
			errs = append(errs, &exposure.Error{Kind: exposure.ErrMalformedRow, Line: rec.line, ISIN: isin, Detail: fmt.Sprintf("weight %s%% exceeds 100%%", value)})
			continue
		}
		p.Entries = append(p.Entries, exposure.PortfolioEntry{Line: rec.line, ISIN: isin, Value: value})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	logrus.WithFields(logrus.Fields{"entries": len(p.Entries), "mode": p.Mode}).Debug("read portfolio table")
	return p, nil
}

// ReadPortfolioFile reads the portfolio table in path.
func ReadPortfolioFile(path string) (*Portfolio, error) {
	return readFile(path, ReadPortfolio)
}
