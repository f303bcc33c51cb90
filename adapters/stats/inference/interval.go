package inference

import (
	"math"

	"cogstats/adapters/stats/tdist"
	domstats "cogstats/domain/stats"
)

// DefaultConfidenceLevel is used when a caller does not pick one.
const DefaultConfidenceLevel = 0.95

// Estimator computes one-sample means, standard errors and two-sided
// confidence intervals against a configured distribution source.
type Estimator struct {
	dist  tdist.Source
	level float64
}

// NewEstimator creates an estimator. A non-positive or >= 1 level falls
// back to DefaultConfidenceLevel.
func NewEstimator(dist tdist.Source, level float64) *Estimator {
	if level <= 0 || level >= 1 {
		level = DefaultConfidenceLevel
	}
	return &Estimator{dist: dist, level: level}
}

// ConfidenceInterval returns the two-sided interval around the sample mean.
// Fewer than 2 values yields [0, 0].
func (e *Estimator) ConfidenceInterval(data []float64) domstats.Interval {
	n := len(data)
	if n < 2 {
		return domstats.Interval{}
	}

	m := mean(data)
	se := math.Sqrt(sampleVariance(data, m) / float64(n))
	margin := e.dist.CriticalValue(float64(n-1), e.level) * se

	return domstats.Interval{Low: m - margin, High: m + margin}
}

// Result builds the canonical one-sample record. Empty input yields the
// all-zero result; a single observation carries its value but no spread.
func (e *Estimator) Result(data []float64) domstats.StatisticalResult {
	n := len(data)
	if n == 0 {
		return domstats.StatisticalResult{}
	}

	m := mean(data)
	se := 0.0
	if n > 1 {
		se = math.Sqrt(sampleVariance(data, m) / float64(n))
	}

	return domstats.StatisticalResult{
		Value:              m,
		ConfidenceInterval: e.ConfidenceInterval(data),
		StandardError:      se,
		SampleSize:         n,
	}
}
