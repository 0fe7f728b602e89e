package exposure

import (
	"errors"
	"slices"

	"github.com/sirupsen/logrus"
)

// ResolvedExposure is the look-through exposure of one security: every fund
// it references has been replaced by that fund's own exposure, scaled by the
// referring weight.
//
// Weights are relative to the security and are not renormalized, a partially
// classified security has breakdowns summing below 1.
type ResolvedExposure struct {
	isin       string
	breakdowns [numDimensions]*Breakdown
	direct     *Breakdown
}

func (r *ResolvedExposure) ISIN() string { return r.isin }

// Breakdown returns the look-through breakdown for d.
func (r *ResolvedExposure) Breakdown(d Dimension) *Breakdown { return r.breakdowns[d] }

// Holdings returns the holding breakdown for the given view.
func (r *ResolvedExposure) Holdings(view HoldingView) *Breakdown {
	if view == Direct {
		return r.direct
	}
	return r.breakdowns[Holding]
}

// Resolver computes resolved exposures over a registry. Each security is
// resolved at most once, the result is cached.
//
// A Resolver is not safe for concurrent use: use one per goroutine, they can
// share the registry.
type Resolver struct {
	registry *Registry
	cache    map[string]*ResolvedExposure
	failed   map[string]error
	path     []string // ISINs being resolved, outermost first
}

// NewResolver returns a Resolver reading from reg.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{
		registry: reg,
		cache:    make(map[string]*ResolvedExposure),
		failed:   make(map[string]error),
	}
}

// Resolve returns the resolved exposure of the security isin.
func (r *Resolver) Resolve(isin string) (*ResolvedExposure, error) {
	sec, ok := r.registry.Security(isin)
	if !ok {
		return nil, &Error{Kind: ErrUnknownSecurity, ISIN: isin}
	}
	return r.resolve(sec)
}

// ResolveAll resolves every security of the registry. Every distinct
// resolution error is reported, the returned error joins them all.
func (r *Resolver) ResolveAll() (map[string]*ResolvedExposure, error) {
	all := make(map[string]*ResolvedExposure, r.registry.Len())
	var errs []error
	for sec := range r.registry.Securities() {
		res, err := r.resolve(sec)
		if err != nil {
			// funds referring to a broken security fail with its error.
			if !slices.Contains(errs, err) {
				errs = append(errs, err)
			}
			continue
		}
		all[sec.isin] = res
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return all, nil
}

// reference returns the security referenced by a holding category, nil if
// the category is a leaf.
//
// Any category shaped like an ISIN is a reference, even with a wrong check
// digit.
func (r *Resolver) reference(sec *Security, category string) (*Security, error) {
	if ref, ok := r.registry.Security(category); ok {
		return ref, nil
	}
	if !isinRegex.MatchString(category) {
		return nil, nil
	}
	e := &Error{Kind: ErrMissingReferencedSecurity, ISIN: sec.isin, Dimension: Holding, Category: category}
	if err := ValidateISIN(category); err != nil {
		e.Detail = err.Error()
	}
	return nil, e
}

func (r *Resolver) resolve(sec *Security) (*ResolvedExposure, error) {
	if res, ok := r.cache[sec.isin]; ok {
		return res, nil
	}
	if err, ok := r.failed[sec.isin]; ok {
		return nil, err
	}
	if i := slices.Index(r.path, sec.isin); i >= 0 {
		cycle := append(slices.Clone(r.path[i:]), sec.isin)
		return nil, &Error{Kind: ErrCyclicFundReference, ISIN: sec.isin, Cycle: cycle}
	}
	r.path = append(r.path, sec.isin)
	defer func() { r.path = r.path[:len(r.path)-1] }()

	log := logrus.WithField("isin", sec.isin)
	log.Trace("resolving exposure")

	res := &ResolvedExposure{isin: sec.isin, direct: &Breakdown{}}
	for _, d := range Dimensions {
		res.breakdowns[d] = &Breakdown{}
		if d != Holding {
			res.breakdowns[d].AddScaled(sec.breakdown(d), One())
		}
	}

	holdings := sec.breakdown(Holding)
	if holdings.IsEmpty() {
		// a security without holdings is its own single holding.
		res.breakdowns[Holding].Add(sec.isin, One())
		res.direct.Add(sec.isin, One())
	}
	for category, w := range holdings.All() {
		res.direct.Add(category, w)
		ref, err := r.reference(sec, category)
		if err != nil {
			r.failed[sec.isin] = err
			return nil, err
		}
		if ref == nil {
			res.breakdowns[Holding].Add(category, w)
			continue
		}
		log.WithField("fund", ref.isin).Tracef("looking through at %s", w)
		sub, err := r.resolve(ref)
		if err != nil {
			r.failed[sec.isin] = err
			return nil, err
		}
		for _, d := range Dimensions {
			res.breakdowns[d].AddScaled(sub.breakdowns[d], w)
		}
	}

	r.cache[sec.isin] = res
	return res, nil
}
