package exposure

import "fmt"

// WarningCode categorizes warnings by the stage that raised them.
type WarningCode string

const (
	WarnInvalidISIN       WarningCode = "invalid-isin"       // ISIN does not pass ISO 6166 validation
	WarnDuplicateCategory WarningCode = "duplicate-category" // conflicting weights, last one kept
	WarnBreakdownOverflow WarningCode = "breakdown-overflow" // a security breakdown sums above 100%
	WarnWeightSum         WarningCode = "weight-sum"         // portfolio weights do not sum to 100%
	WarnAggregateOverflow WarningCode = "aggregate-overflow" // a portfolio dimension sums above 100%
)

// Warning is a non-fatal issue found in the inputs. The figures are computed
// anyway but they may be wrong.
type Warning struct {
	Code      WarningCode `json:"code"`
	ISIN      string      `json:"isin,omitempty"`
	Dimension string      `json:"dimension,omitempty"`
	Message   string      `json:"message"`
}

func (w Warning) String() string {
	switch {
	case w.ISIN != "" && w.Dimension != "":
		return fmt.Sprintf("%s: %s %s: %s", w.Code, w.ISIN, w.Dimension, w.Message)
	case w.ISIN != "":
		return fmt.Sprintf("%s: %s: %s", w.Code, w.ISIN, w.Message)
	case w.Dimension != "":
		return fmt.Sprintf("%s: %s: %s", w.Code, w.Dimension, w.Message)
	default:
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
}
