package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/etnz/exposure"
	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, name := range []string{EnvCurrency, EnvLimit, EnvLogLevel, EnvClassificationFile, EnvOutputDir} {
		t.Setenv(name, "") // restored after the test
		os.Unsetenv(name)
	}
	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := Config{Currency: "EUR", Limit: 25, LogLevel: "info"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv(EnvCurrency, "USD")
	t.Setenv(EnvLimit, "10")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvClassificationFile, "countries.yaml")
	t.Setenv(EnvOutputDir, "reports")

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := Config{Currency: "USD", Limit: 10, LogLevel: "debug", ClassificationFile: "countries.yaml", OutputDir: "reports"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Error(t *testing.T) {
	t.Setenv(EnvLimit, "many")
	_, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig() succeeded, want an error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("LoadConfig() error = %v, want a parse env error", err)
	}
}

func TestParseDimensions(t *testing.T) {
	testCases := []struct {
		in      string
		want    []exposure.Dimension
		wantErr bool
	}{
		{in: "", want: nil},
		{in: "sector", want: []exposure.Dimension{exposure.Sector}},
		{in: "country, market", want: []exposure.Dimension{exposure.Country, exposure.Market}},
		{in: "region,", want: []exposure.Dimension{exposure.Region}},
		{in: "sector,colour", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseDimensions(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseDimensions(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("parseDimensions(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, name := range []string{"analyze", "resolve", "check", "classify", "topic"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("Completion() misses subcommand %q", name)
		}
	}
	for _, name := range []string{"currency", "limit", "log-level", "classification", "output-dir", "raw"} {
		if _, ok := c.Flags[name]; !ok {
			t.Errorf("Completion() misses global flag %q", name)
		}
	}
	if got := c.Sub["topic"].Args.Predict(""); !cmp.Equal(got, []string{"classification", "configuration", "exposure", "portfolio", "securities"}) {
		t.Errorf("topic completion = %v", got)
	}
}
