package exposure

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// tolerance is the absolute difference under which two weights are equal.
var tolerance = decimal.New(1, -9)

// Weight is a fraction of a whole: of a security, of a fund or of the portfolio.
//
// Weights are exact decimals so that sums over many categories do not drift.
type Weight struct {
	value decimal.Decimal
}

// W creates a Weight from a fraction (0.25 is a quarter).
func W[T float64 | int | int64 | decimal.Decimal](value T) Weight {
	return Weight{value: newDecimal(value)}
}

// One is the weight of a whole.
func One() Weight { return Weight{value: decimal.NewFromInt(1)} }

// ParsePercent parses a percentage like "12.5" into the Weight 0.125.
func ParsePercent(s string) (Weight, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Weight{}, fmt.Errorf("invalid percentage %q", s)
	}
	return Weight{value: d.Shift(-2)}, nil
}

func (w Weight) Add(v Weight) Weight       { return Weight{value: w.value.Add(v.value)} }
func (w Weight) Sub(v Weight) Weight       { return Weight{value: w.value.Sub(v.value)} }
func (w Weight) Mul(v Weight) Weight       { return Weight{value: w.value.Mul(v.value)} }
func (w Weight) Div(v Weight) Weight       { return Weight{value: w.value.Div(v.value)} }
func (w Weight) IsZero() bool              { return w.value.IsZero() }
func (w Weight) IsNegative() bool          { return w.value.IsNegative() }
func (w Weight) GreaterThan(v Weight) bool { return w.value.GreaterThan(v.value) }
func (w Weight) Compare(v Weight) int      { return w.value.Cmp(v.value) }
func (w Weight) Float64() float64          { return w.value.InexactFloat64() }
func (w Weight) Percent() Percent          { return Percent(w.value.Shift(2).InexactFloat64()) }
func (w Weight) String() string            { return w.Percent().String() }

// Exceeds reports whether w is greater than limit by more than the tolerance.
func (w Weight) Exceeds(limit Weight) bool {
	return w.value.Sub(limit.value).GreaterThan(tolerance)
}

// Equal reports whether w and v differ by less than the tolerance.
func (w Weight) Equal(v Weight) bool {
	return w.value.Sub(v.value).Abs().LessThanOrEqual(tolerance)
}

// MarshalJSON writes the weight as a plain JSON number.
func (w Weight) MarshalJSON() ([]byte, error) {
	return []byte(w.value.Round(12).String()), nil
}

// Percent is a percentage ready for display (12.5 means 12.5%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
