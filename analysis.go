package exposure

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Options configures an analysis.
type Options struct {
	// Classification infers regions and markets from countries. If nil,
	// only the regions given in the securities table are known.
	Classification ClassificationTable
	Merge          MergeOptions
	View           HoldingView
	Currency       string // currency of the amounts, in amount mode
}

// Analysis is the outcome of a complete run over a securities table and a
// portfolio table.
type Analysis struct {
	Registry  *Registry
	Portfolio *Portfolio
	Resolved  map[string]*ResolvedExposure
	Result    *AggregateResult
	TER       Percent // weighted total expense ratio of the portfolio
	Warnings  []Warning
}

// Analyze runs every stage: merge the securities rows, infer missing regions
// and markets, resolve fund references, normalize the portfolio and aggregate.
//
// Any error aborts the run, there is no partial result.
func Analyze(rows []RawRow, entries []PortfolioEntry, mode Mode, opts Options) (*Analysis, error) {
	an := &Analysis{}

	reg, warnings, err := Merge(rows, opts.Merge)
	if err != nil {
		return nil, fmt.Errorf("cannot merge securities: %w", err)
	}
	an.Registry = reg
	an.Warnings = append(an.Warnings, warnings...)

	if opts.Classification != nil {
		if err := Infer(reg, opts.Classification); err != nil {
			return nil, fmt.Errorf("cannot infer classification: %w", err)
		}
	}

	an.Resolved, err = NewResolver(reg).ResolveAll()
	if err != nil {
		return nil, fmt.Errorf("cannot resolve fund references: %w", err)
	}

	an.Portfolio, warnings, err = Normalize(entries, mode, reg, opts.Currency)
	if err != nil {
		return nil, fmt.Errorf("cannot normalize portfolio: %w", err)
	}
	an.Warnings = append(an.Warnings, warnings...)

	an.Result, warnings, err = Aggregate(an.Portfolio, an.Resolved, opts.View)
	if err != nil {
		return nil, fmt.Errorf("cannot aggregate exposures: %w", err)
	}
	an.Warnings = append(an.Warnings, warnings...)

	an.TER = TER(reg, an.Portfolio)
	logrus.WithField("warnings", len(an.Warnings)).Infof("analyzed %d securities, TER %.3f%%", an.Portfolio.Len(), float64(an.TER))
	return an, nil
}

// TER returns the total expense ratio of the portfolio, the TER of each
// security weighted by its share. Fund references are not looked through,
// the TER of a fund already includes the fees of what it holds.
func TER(reg *Registry, p *Portfolio) Percent {
	var ter float64
	for isin, w := range p.Holdings() {
		if sec, ok := reg.Security(isin); ok {
			ter += float64(sec.ter) * w.Float64()
		}
	}
	return Percent(ter)
}

// MarshalJSON writes the analysis report with a stable key order.
func (an *Analysis) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("mode", an.Portfolio.Mode().String())
	if total, ok := an.Result.Total(); ok {
		w.Append("total", total)
	}
	w.Append("ter", float64(an.TER))
	w.Append("securities", an.Portfolio.Len())
	w.Append("exposure", an.Result)
	w.Optional("warnings", an.Warnings)
	return w.MarshalJSON()
}

// MarshalJSON writes one object per dimension, categories in first-seen
// order.
func (a *AggregateResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("view", a.view.String())
	for _, d := range Dimensions {
		w.Append(d.String(), a.breakdowns[d])
	}
	return w.MarshalJSON()
}
