package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aloncha/Kelas-Alpro/internal/compare"
	"github.com/aloncha/Kelas-Alpro/internal/dataset"
	"github.com/aloncha/Kelas-Alpro/internal/search"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Kernel string // interactive search
	Size   int

	GridPath     string // grid comparison
	ReportFormat string

	LogFormat string
	LogLevel  string
}

var (
	logFormats = []string{"text", "json"}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

// NewConfig validates cfg, fills in defaults and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q: must be one of %v", cfg.LogFormat, logFormats)
	}
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q: must be one of %v", cfg.LogLevel, logLevels)
	}

	if cfg.GridPath != "" {
		if cfg.ReportFormat == "" {
			cfg.ReportFormat = compare.FormatTable
		}
		if !slices.Contains(compare.Formats(), cfg.ReportFormat) {
			return nil, fmt.Errorf("invalid report format %q: must be one of %v", cfg.ReportFormat, compare.Formats())
		}
		return &cfg, nil
	}

	if cfg.Kernel == "" {
		return nil, errors.New("either Kernel or GridPath must be set")
	}
	if _, err := search.Lookup(cfg.Kernel); err != nil {
		return nil, err
	}
	if cfg.Size == 0 {
		cfg.Size = dataset.ReferenceSize
	}

	return &cfg, nil
}
