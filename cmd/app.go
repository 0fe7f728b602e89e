// Package cmd implements the xps command line application: the portfolio
// exposure reports and the tools to check the input tables.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/exposure"
	"github.com/etnz/exposure/classification"
	"github.com/etnz/exposure/ingest"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "exposure")
	c.Register(&resolveCmd{}, "exposure")

	c.Register(&checkCmd{}, "tables")
	c.Register(&classifyCmd{}, "tables")

	c.Register(&topicCmd{}, "help")
}

// Config holds the defaults of the global flags, read from the environment.
type Config struct {
	Currency           string `env:"XPS_CURRENCY" envDefault:"EUR"`
	Limit              int    `env:"XPS_LIMIT" envDefault:"25"`
	LogLevel           string `env:"XPS_LOG_LEVEL" envDefault:"info"`
	ClassificationFile string `env:"XPS_CLASSIFICATION_FILE"`
	OutputDir          string `env:"XPS_OUTPUT_DIR"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var defaults, defaultsErr = LoadConfig()

var currency = flag.String("currency", defaults.Currency, "Currency of the portfolio amounts (env "+EnvCurrency+")")
var limit = flag.Int("limit", defaults.Limit, "Maximum number of categories listed per dimension, 0 for all (env "+EnvLimit+")")
var logLevel = flag.String("log-level", defaults.LogLevel, "Log level: panic, fatal, error, warn, info, debug or trace (env "+EnvLogLevel+")")
var classificationFile = flag.String("classification", defaults.ClassificationFile, "YAML file extending the built-in country and sector classification (env "+EnvClassificationFile+")")
var outputDir = flag.String("output-dir", defaults.OutputDir, "Write reports into this folder instead of the standard output (env "+EnvOutputDir+")")
var raw = flag.Bool("raw", false, "Print Markdown as is, without terminal rendering")

// Setup applies the global flags, it must be called after the flags are
// parsed.
func Setup() error {
	if defaultsErr != nil {
		return defaultsErr
	}
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		return fmt.Errorf("invalid -log-level: %w", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return nil
}

// Classification returns the built-in classification table extended with the
// -classification file, if any.
func Classification() (*classification.Table, error) {
	if *classificationFile == "" {
		return classification.Default(), nil
	}
	return classification.LoadFile(*classificationFile)
}

// DecodeRegistry reads the securities table in path, merges and classifies
// it.
func DecodeRegistry(path string, opts exposure.MergeOptions) (*exposure.Registry, []exposure.Warning, error) {
	table, err := Classification()
	if err != nil {
		return nil, nil, err
	}
	rows, err := ingest.ReadSecuritiesFile(path)
	if err != nil {
		return nil, nil, err
	}
	opts.Sectors = table
	reg, warnings, err := exposure.Merge(rows, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := exposure.Infer(reg, table); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, warnings, nil
}

// logWarnings reports the warnings on the log.
func logWarnings(warnings []exposure.Warning) {
	for _, w := range warnings {
		logrus.WithFields(logrus.Fields{"code": w.Code, "isin": w.ISIN, "dimension": w.Dimension}).Warn(w.Message)
	}
}

// parseDimensions parses a comma separated list of dimensions. An empty list
// selects them all.
func parseDimensions(s string) ([]exposure.Dimension, error) {
	var dims []exposure.Dimension
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		d, err := exposure.ParseDimension(name)
		if err != nil {
			return nil, err
		}
		dims = append(dims, d)
	}
	return dims, nil
}
