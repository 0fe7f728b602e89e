package exposure

import "fmt"

// Dimension is a classification axis of an exposure.
type Dimension int

const (
	Holding Dimension = iota
	Sector
	Country
	Region
	Market

	numDimensions = iota
)

// Dimensions lists every dimension in report order.
var Dimensions = [numDimensions]Dimension{Holding, Sector, Country, Region, Market}

func (d Dimension) String() string {
	switch d {
	case Holding:
		return "holding"
	case Sector:
		return "sector"
	case Country:
		return "country"
	case Region:
		return "region"
	case Market:
		return "market"
	default:
		return "unknown"
	}
}

// ParseDimension parses a string into a Dimension.
func ParseDimension(s string) (Dimension, error) {
	for _, d := range Dimensions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown dimension: %q", s)
}

// HoldingView selects how the holding dimension treats fund references.
type HoldingView int

const (
	// LookThrough replaces every fund by its own holdings, down to the leaves.
	LookThrough HoldingView = iota
	// Direct keeps the funds referenced by a security as holdings.
	Direct
)

func (v HoldingView) String() string {
	switch v {
	case LookThrough:
		return "look-through"
	case Direct:
		return "direct"
	default:
		return "unknown"
	}
}

// ParseHoldingView parses a string into a HoldingView.
func ParseHoldingView(s string) (HoldingView, error) {
	switch s {
	case "look-through":
		return LookThrough, nil
	case "direct":
		return Direct, nil
	default:
		return 0, fmt.Errorf("unknown holding view: %q", s)
	}
}
