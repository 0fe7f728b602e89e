package exposure

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// AggregateResult is the exposure of a whole portfolio: for each dimension,
// the share of the portfolio in each category.
//
// Categories keep their first-seen order, following the portfolio order and
// then each security's breakdown order. What is left to reach 100% in a
// dimension is unclassified.
type AggregateResult struct {
	view       HoldingView
	breakdowns [numDimensions]*Breakdown
	total      Money
	hasTotal   bool
}

func (a *AggregateResult) View() HoldingView { return a.view }

// Breakdown returns the portfolio breakdown for d.
func (a *AggregateResult) Breakdown(d Dimension) *Breakdown { return a.breakdowns[d] }

// Total returns the portfolio total amount, if amounts were given.
func (a *AggregateResult) Total() (Money, bool) { return a.total, a.hasTotal }

// Value returns the amount of money exposed to category in d, if amounts were
// given.
func (a *AggregateResult) Value(d Dimension, category string) (Money, bool) {
	w, ok := a.breakdowns[d].Get(category)
	if !ok || !a.hasTotal {
		return Money{}, false
	}
	return a.total.Mul(w), true
}

// Aggregate sums the resolved exposures of the held securities weighted by
// their portfolio weight.
//
// resolved must hold an exposure for every security of the portfolio.
func Aggregate(p *Portfolio, resolved map[string]*ResolvedExposure, view HoldingView) (*AggregateResult, []Warning, error) {
	a := &AggregateResult{view: view}
	a.total, a.hasTotal = p.Total()
	for _, d := range Dimensions {
		a.breakdowns[d] = &Breakdown{}
	}

	for isin, weight := range p.Holdings() {
		res, ok := resolved[isin]
		if !ok {
			return nil, nil, &Error{Kind: ErrUnknownSecurity, ISIN: isin, Detail: "no resolved exposure"}
		}
		for _, d := range Dimensions {
			bd := res.Breakdown(d)
			if d == Holding {
				bd = res.Holdings(view)
			}
			for category, w := range bd.All() {
				if contribution := w.Mul(weight); !contribution.IsZero() {
					a.breakdowns[d].Add(category, contribution)
				}
			}
		}
	}

	var warnings []Warning
	for _, d := range Dimensions {
		total := a.breakdowns[d].Total()
		logrus.WithField("dimension", d).Debugf("%d categories, %s classified", a.breakdowns[d].Len(), total)
		if total.Exceeds(One()) {
			warnings = append(warnings, Warning{
				Code:      WarnAggregateOverflow,
				Dimension: d.String(),
				Message:   fmt.Sprintf("portfolio exposure sums to %s", total),
			})
		}
	}
	return a, warnings, nil
}
