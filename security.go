package exposure

import (
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"strings"
)

// isinRegex checks for the basic structure: 2 letters, 9 alphanumeric, 1 digit.
var isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// ValidateISIN checks if a string is a validly formatted ISIN.
// It returns nil if valid, or a descriptive error if invalid.
func ValidateISIN(isin string) error {
	// 1. Length validation
	if len(isin) != 12 {
		return fmt.Errorf("invalid length: must be 12 characters, got %d", len(isin))
	}

	// 2. Format validation
	if !isinRegex.MatchString(isin) {
		return fmt.Errorf("invalid format: must be 2 uppercase letters, 9 alphanumeric chars, and 1 digit")
	}

	// 3. Convert letters to numbers for check digit calculation
	var numericStr strings.Builder
	for _, char := range isin[:11] {
		if char >= 'A' && char <= 'Z' {
			numericStr.WriteString(strconv.Itoa(int(char - 'A' + 10)))
		} else {
			numericStr.WriteRune(char)
		}
	}

	// 4. Apply a variation of the Luhn algorithm
	sum := 0
	isSecond := true
	digits := numericStr.String()
	for i := len(digits) - 1; i >= 0; i-- {
		digit, _ := strconv.Atoi(string(digits[i]))

		if isSecond {
			digit *= 2
		}

		sum += (digit / 10) + (digit % 10)
		isSecond = !isSecond
	}

	// 5. Validate the check digit
	expectedCheckDigit := (10 - (sum % 10)) % 10
	actualCheckDigit, _ := strconv.Atoi(string(isin[11]))

	if expectedCheckDigit != actualCheckDigit {
		return fmt.Errorf("invalid check digit: expected %d, got %d", expectedCheckDigit, actualCheckDigit)
	}

	return nil
}

// Security is the canonical description of one ISIN: what it holds and how
// it is classified. A holding category is either the ISIN of another
// security (the security is then a fund of that one) or a leaf label.
//
// Securities are built by Merge and completed by Infer, they are read-only
// afterwards.
type Security struct {
	isin   string
	name   string
	ticker string
	ter    Percent
	hasTER bool

	breakdowns [numDimensions]Breakdown // Market is never read from a table, only inferred.
}

func newSecurity(isin string) *Security { return &Security{isin: isin} }

func (s *Security) ISIN() string   { return s.isin }
func (s *Security) Name() string   { return s.name }
func (s *Security) Ticker() string { return s.ticker }
func (s *Security) TER() Percent   { return s.ter }

// Label returns the name of the security, or its ISIN if it has none.
func (s *Security) Label() string {
	if s.name != "" {
		return s.name
	}
	return s.isin
}

// Breakdown returns a copy of the security's own breakdown for d, without
// any fund look-through.
func (s *Security) Breakdown(d Dimension) *Breakdown {
	return s.breakdowns[d].Clone()
}

// breakdown returns the security's own breakdown, for in package reads.
func (s *Security) breakdown(d Dimension) *Breakdown {
	return &s.breakdowns[d]
}

// Registry holds the securities by ISIN and remembers their order of
// appearance.
type Registry struct {
	securities []*Security
	index      map[string]*Security
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		securities: make([]*Security, 0),
		index:      make(map[string]*Security),
	}
}

func (r *Registry) add(s *Security) {
	r.securities = append(r.securities, s)
	r.index[s.isin] = s
}

func (r *Registry) Has(isin string) bool {
	_, ok := r.index[isin]
	return ok
}

// Security returns the security for isin.
func (r *Registry) Security(isin string) (*Security, bool) {
	s, ok := r.index[isin]
	return s, ok
}

func (r *Registry) Len() int { return len(r.securities) }

// Securities iterates over the securities in order of appearance.
func (r *Registry) Securities() iter.Seq[*Security] {
	return func(yield func(*Security) bool) {
		for _, s := range r.securities {
			if !yield(s) {
				return
			}
		}
	}
}
