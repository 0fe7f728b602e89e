package cmd

import (
	"flag"

	"github.com/etnz/exposure"
	"github.com/etnz/exposure/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the application, global flags
// included.
func Completion() *complete.Command {
	views := predict.Set{"look-through", "direct"}
	var dimensions predict.Set
	for _, d := range exposure.Dimensions {
		dimensions = append(dimensions, d.String())
	}
	csv := predict.Files("*.csv")

	c := &complete.Command{
		Flags: map[string]complete.Predictor{},
		Sub: map[string]*complete.Command{
			"analyze": {
				Flags: map[string]complete.Predictor{
					"view":      views,
					"dimension": dimensions,
					"last-wins": predict.Nothing,
					"json":      predict.Nothing,
					"q":         predict.Something,
					"p":         predict.Nothing,
				},
				Args: csv,
			},
			"resolve": {
				Flags: map[string]complete.Predictor{"view": views, "dimension": dimensions},
				Args:  csv,
			},
			"check": {
				Flags: map[string]complete.Predictor{
					"last-wins": predict.Nothing,
					"strict":    predict.Nothing,
				},
				Args: csv,
			},
			"classify": {
				Flags: map[string]complete.Predictor{"s": predict.Nothing},
			},
			"topic": {
				Flags: map[string]complete.Predictor{"l": predict.Nothing},
				Args:  predict.Set(docs.Topics()),
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}

	globals := map[string]complete.Predictor{
		"classification": predict.Files("*.yaml"),
		"output-dir":     predict.Dirs("*"),
		"log-level":      predict.Set{"panic", "fatal", "error", "warn", "info", "debug", "trace"},
	}
	flag.VisitAll(func(f *flag.Flag) {
		if p, ok := globals[f.Name]; ok {
			c.Flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			c.Flags[f.Name] = predict.Nothing
			return
		}
		c.Flags[f.Name] = predict.Something
	})
	return c
}
