package exposure

import (
	"errors"
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Mode tells how the values of a portfolio table are expressed.
type Mode int

const (
	// ModeWeight values are percentages of the portfolio.
	ModeWeight Mode = iota
	// ModeAmount values are amounts of money, all in the same currency.
	ModeAmount
)

func (m Mode) String() string {
	switch m {
	case ModeWeight:
		return "weight"
	case ModeAmount:
		return "amount"
	default:
		return "unknown"
	}
}

// PortfolioEntry is one line of the portfolio table.
type PortfolioEntry struct {
	Line  int // line number in the source, for diagnostics
	ISIN  string
	Value decimal.Decimal
}

// Portfolio is a normalized portfolio: the share of each security, summing
// to 1. In amount mode it also keeps the amounts.
type Portfolio struct {
	mode    Mode
	isins   []string
	weights map[string]Weight
	amounts map[string]Money
	total   Money
}

func (p *Portfolio) Mode() Mode { return p.mode }
func (p *Portfolio) Len() int   { return len(p.isins) }

// Weight returns the normalized weight of isin, zero if not held.
func (p *Portfolio) Weight(isin string) Weight { return p.weights[isin] }

// Amount returns the amount held in isin, only in amount mode.
func (p *Portfolio) Amount(isin string) (Money, bool) {
	m, ok := p.amounts[isin]
	return m, ok
}

// Total returns the total amount of the portfolio, only in amount mode.
func (p *Portfolio) Total() (Money, bool) {
	return p.total, p.mode == ModeAmount
}

// Holdings iterates over the held ISINs and their weight in order of
// appearance.
func (p *Portfolio) Holdings() iter.Seq2[string, Weight] {
	return func(yield func(string, Weight) bool) {
		for _, isin := range p.isins {
			if !yield(isin, p.weights[isin]) {
				return
			}
		}
	}
}

// weightSumTolerance is how far from 100% weights can sum before a warning.
var weightSumTolerance = decimal.New(1, -2)

// Normalize converts the portfolio table into weights summing to 1.
//
// Weights or amounts are divided by their sum, the same ISIN listed twice is
// summed. Every entry must be a known security with a non-negative value.
// currency is only used in amount mode.
func Normalize(entries []PortfolioEntry, mode Mode, reg *Registry, currency string) (*Portfolio, []Warning, error) {
	p := &Portfolio{
		mode:    mode,
		weights: make(map[string]Weight),
		amounts: make(map[string]Money),
	}
	values := make(map[string]decimal.Decimal)
	var errs []error
	var sum decimal.Decimal
	for _, e := range entries {
		if e.Value.IsNegative() {
			errs = append(errs, &Error{Kind: ErrNegativeValue, Line: e.Line, ISIN: e.ISIN, Detail: fmt.Sprintf("%s %s", mode, e.Value)})
			continue
		}
		if !reg.Has(e.ISIN) {
			errs = append(errs, &Error{Kind: ErrUnknownSecurity, Line: e.Line, ISIN: e.ISIN})
			continue
		}
		if _, ok := values[e.ISIN]; !ok {
			p.isins = append(p.isins, e.ISIN)
		}
		values[e.ISIN] = values[e.ISIN].Add(e.Value)
		sum = sum.Add(e.Value)
	}
	if len(errs) > 0 {
		return nil, nil, errors.Join(errs...)
	}
	if sum.IsZero() {
		return nil, nil, &Error{Kind: ErrEmptyPortfolio, Detail: fmt.Sprintf("%d entries with a zero total", len(entries))}
	}

	var warnings []Warning
	if mode == ModeWeight && sum.Sub(decimal.NewFromInt(100)).Abs().GreaterThan(weightSumTolerance) {
		warnings = append(warnings, Warning{Code: WarnWeightSum, Message: fmt.Sprintf("weights sum to %s%%, they are rescaled to 100%%", sum)})
	}

	total := Weight{value: sum}
	for _, isin := range p.isins {
		p.weights[isin] = Weight{value: values[isin]}.Div(total)
	}
	if mode == ModeAmount {
		for _, isin := range p.isins {
			p.amounts[isin] = M(values[isin], currency)
			p.total = p.total.Add(p.amounts[isin])
		}
	}

	logrus.WithFields(logrus.Fields{"securities": p.Len(), "mode": mode}).Debug("normalized portfolio")
	return p, warnings, nil
}
