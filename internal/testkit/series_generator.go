// Package testkit generates synthetic behavioral-metric series for tests:
// noisy linear trends with a controllable outlier tail, seeded for
// reproducibility.
package testkit

import (
	"math/rand"
)

// SeriesConfig configures the synthetic series generator
type SeriesConfig struct {
	Length    int     `json:"length"`
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
	NoiseSD   float64 `json:"noise_sd"`
	// Outliers are appended after the trend points, in order.
	Outliers []float64 `json:"outliers"`
	Seed     int64     `json:"seed"`
}

// DefaultSeriesConfig returns a gently rising series with mild noise,
// roughly shaped like a words-per-minute track over two months of sessions.
func DefaultSeriesConfig() SeriesConfig {
	return SeriesConfig{
		Length:    60,
		Intercept: 120,
		Slope:     0.5,
		NoiseSD:   2.0,
		Seed:      42,
	}
}

// SeriesGenerator produces deterministic synthetic metric samples
type SeriesGenerator struct {
	config SeriesConfig
	rng    *rand.Rand
}

// NewSeriesGenerator creates a generator for the given config
func NewSeriesGenerator(config SeriesConfig) *SeriesGenerator {
	return &SeriesGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate returns the trend points followed by any configured outliers
func (g *SeriesGenerator) Generate() []float64 {
	values := make([]float64, 0, g.config.Length+len(g.config.Outliers))
	for i := 0; i < g.config.Length; i++ {
		v := g.config.Intercept + g.config.Slope*float64(i) + g.rng.NormFloat64()*g.config.NoiseSD
		values = append(values, v)
	}
	values = append(values, g.config.Outliers...)
	return values
}

// GenerateGroup returns n draws around a fixed mean, for two-sample tests
func (g *SeriesGenerator) GenerateGroup(n int, mean, sd float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = mean + g.rng.NormFloat64()*sd
	}
	return values
}
