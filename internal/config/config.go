// Package config holds the settings of a fitting run.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Settings mirrors the fitter command line.
type Settings struct {
	Resolution   int             `yaml:"resolution"`
	MinRoughness float64         `yaml:"min_roughness"`
	MaxRoughness float64         `yaml:"max_roughness"`
	ErrorSamples int             `yaml:"error_samples"`
	Threads      int             `yaml:"threads"`
	BRDF         string          `yaml:"brdf"`
	Output       string          `yaml:"output"`
	Seed         int64           `yaml:"seed"`
	Logging      LoggingSettings `yaml:"logging"`
}

// LoggingSettings holds logging settings.
type LoggingSettings struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the settings used when nothing is configured.
func Default() *Settings {
	return &Settings{
		Resolution:   64,
		MinRoughness: 0.0001,
		MaxRoughness: 1.0,
		ErrorSamples: 64,
		Threads:      1,
		BRDF:         "ggx",
		Seed:         1,
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}

// Validate reports every problem with s at once.
func (s *Settings) Validate() error {
	var errs []error
	if s.Resolution < 2 {
		errs = append(errs, fmt.Errorf("resolution must be at least 2, got %d", s.Resolution))
	}
	if s.MinRoughness <= 0 {
		errs = append(errs, fmt.Errorf("minimal roughness must be greater than 0, got %g", s.MinRoughness))
	}
	if s.MinRoughness >= s.MaxRoughness {
		errs = append(errs, fmt.Errorf("minimal roughness %g must be below maximum roughness %g", s.MinRoughness, s.MaxRoughness))
	}
	if s.ErrorSamples < 1 {
		errs = append(errs, fmt.Errorf("error samples must be at least 1, got %d", s.ErrorSamples))
	}
	if s.Threads < 1 {
		errs = append(errs, fmt.Errorf("threads must be at least 1, got %d", s.Threads))
	}
	if s.BRDF == "" {
		errs = append(errs, errors.New("brdf method is not set"))
	}
	if s.Output == "" {
		errs = append(errs, errors.New("output file is not set"))
	}
	return errors.Join(errs...)
}

// Summary is a human readable dump of the settings.
func (s *Settings) Summary() string {
	var b strings.Builder
	b.WriteString("Current fitting settings:\n")
	fmt.Fprintf(&b, "\tImage resolution:\t%dx%d\n", s.Resolution, s.Resolution)
	fmt.Fprintf(&b, "\tMinimum roughness:\t%g\n", s.MinRoughness)
	fmt.Fprintf(&b, "\tMaximum roughness:\t%g\n", s.MaxRoughness)
	fmt.Fprintf(&b, "\tError est. samples:\t%d\n", s.ErrorSamples)
	fmt.Fprintf(&b, "\tThreads:\t\t%d\n", s.Threads)
	fmt.Fprintf(&b, "\tBRDF:\t\t\t%s\n", s.BRDF)
	fmt.Fprintf(&b, "\tLookup output file:\t%s", s.Output)
	return b.String()
}
