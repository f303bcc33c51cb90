// Package tdist supplies two-tailed critical values and p-values for
// Student's t-distribution. Two sources are available: Approximate keeps
// the coarse lookup-table behavior earlier pipelines were calibrated
// against, Exact computes from the real distribution via gonum.
package tdist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source provides critical values and two-tailed p-values for a given
// degrees-of-freedom. Implementations are stateless and safe for
// concurrent use.
type Source interface {
	// CriticalValue returns the two-tailed critical value for the given
	// degrees of freedom and confidence level (e.g. 0.95).
	CriticalValue(df, level float64) float64
	// PValue returns the two-tailed p-value for |t| at the given
	// degrees of freedom.
	PValue(t, df float64) float64
}

// criticalEntry pairs a tabulated df with its 95% two-tailed critical value.
type criticalEntry struct {
	df   float64
	crit float64
}

// critical95 holds the tabulated 95% two-tailed critical values.
// Read-only after init; safe for unsynchronized concurrent reads.
var critical95 = []criticalEntry{
	{1, 12.706},
	{2, 4.303},
	{3, 3.182},
	{4, 2.776},
	{5, 2.571},
	{6, 2.447},
	{7, 2.365},
	{8, 2.306},
	{9, 2.262},
	{10, 2.228},
	{15, 2.131},
	{20, 2.086},
	{25, 2.060},
	{30, 2.042},
}

// Approximate is the legacy low-fidelity source: normal-approximation
// constants for large df, nearest tabulated df below 30, and a monotone
// step function for p-values. The thresholds are fixed for compatibility
// with previously published outputs.
type Approximate struct{}

// NewApproximate creates the default distribution source.
func NewApproximate() Approximate {
	return Approximate{}
}

// CriticalValue returns normal-approximation constants for df >= 30 and
// the nearest tabulated 95% value otherwise.
func (Approximate) CriticalValue(df, level float64) float64 {
	if df >= 30 {
		switch level {
		case 0.99:
			return 2.58
		case 0.95:
			return 1.96
		default:
			return 1.96
		}
	}

	best := math.Inf(1)
	crit := 0.0
	for _, entry := range critical95 {
		dist := math.Abs(df - entry.df)
		if dist < best {
			best = dist
			crit = entry.crit
		}
	}
	if crit == 0 {
		return 2.0
	}
	return crit
}

// PValue maps |t| onto a coarse two-tailed p-value ladder.
func (Approximate) PValue(t, df float64) float64 {
	if df < 1 {
		return 1
	}

	abs := math.Abs(t)
	switch {
	case abs > 3:
		return 0.01
	case abs > 2.5:
		return 0.02
	case abs > 2:
		return 0.05
	case abs > 1.5:
		return 0.15
	case abs > 1:
		return 0.30
	default:
		return 0.50
	}
}

// Exact computes critical values and p-values from the true Student's
// t-distribution. Substituting it for Approximate changes numeric output
// at the margins; callers who need parity with historical results must
// stay on Approximate.
type Exact struct{}

// NewExact creates the exact distribution source.
func NewExact() Exact {
	return Exact{}
}

// CriticalValue returns the exact two-tailed quantile for the level.
func (Exact) CriticalValue(df, level float64) float64 {
	if df < 1 {
		return 2.0
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return dist.Quantile(1 - (1-level)/2)
}

// PValue returns the exact two-tailed p-value.
func (Exact) PValue(t, df float64) float64 {
	if df < 1 {
		return 1
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * (1 - dist.CDF(math.Abs(t)))
}
