package exposure

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of errors reported by the engine. They are all fatal to the run, use
// errors.Is to test for a kind and errors.As with *Error to get the context.
var (
	ErrMalformedRow              = errors.New("malformed row")
	ErrDuplicateCategory         = errors.New("duplicate category")
	ErrUnknownSector             = errors.New("unknown sector")
	ErrUnknownCountry            = errors.New("unknown country")
	ErrCyclicFundReference       = errors.New("cyclic fund reference")
	ErrMissingReferencedSecurity = errors.New("missing referenced security")
	ErrEmptyPortfolio            = errors.New("empty portfolio")
	ErrUnknownSecurity           = errors.New("unknown security")
	ErrNegativeValue             = errors.New("negative value")
)

// Error is an input defect with enough context for an operator to fix the
// securities table, the portfolio table or the classification table.
type Error struct {
	Kind      error     // one of the Err* kinds
	Line      int       // line in the source table, 0 if unknown
	ISIN      string    // security involved, if any
	Dimension Dimension // breakdown involved, meaningful only if Category is set
	Category  string    // category, country or holding reference involved, if any
	Cycle     []string  // ISINs of a fund reference cycle, first and last are equal
	Detail    string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.ISIN != "" {
		fmt.Fprintf(&b, " in %s", e.ISIN)
	}
	if e.Category != "" {
		fmt.Fprintf(&b, ": %s %q", e.Dimension, e.Category)
	}
	if len(e.Cycle) > 0 {
		fmt.Fprintf(&b, ": %s", strings.Join(e.Cycle, " → "))
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Kind }
