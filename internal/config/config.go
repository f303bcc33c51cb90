package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"cogstats/internal/errors"
)

// Distribution source modes. Approximate preserves the coarse legacy
// thresholds; exact computes from the real Student's t-distribution.
const (
	DistributionApproximate = "approximate"
	DistributionExact       = "exact"
)

// Config represents the toolkit configuration. Significance alpha and the
// reliability tier thresholds are fixed design constants and deliberately
// absent here.
type Config struct {
	// ConfidenceLevel for interval estimation, in (0, 1).
	ConfidenceLevel float64
	// Distribution selects the t-distribution source.
	Distribution string
	// LogLevel is the engine log verbosity.
	LogLevel string
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		ConfidenceLevel: 0.95,
		Distribution:    DistributionApproximate,
		LogLevel:        "INFO",
	}
}

// Load reads configuration from environment variables and validates it.
// A .env file is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if raw := os.Getenv("COGSTATS_CONFIDENCE_LEVEL"); raw != "" {
		level, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid COGSTATS_CONFIDENCE_LEVEL %q", raw)
		}
		if level <= 0 || level >= 1 {
			return nil, errors.New(errors.CodeConfigInvalid, "COGSTATS_CONFIDENCE_LEVEL must be in (0, 1)")
		}
		cfg.ConfidenceLevel = level
	}

	if mode := os.Getenv("COGSTATS_DISTRIBUTION"); mode != "" {
		if mode != DistributionApproximate && mode != DistributionExact {
			return nil, errors.New(errors.CodeConfigInvalid, "COGSTATS_DISTRIBUTION must be approximate or exact")
		}
		cfg.Distribution = mode
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}
