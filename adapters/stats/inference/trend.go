package inference

import (
	"math"

	"cogstats/adapters/stats/tdist"
	domstats "cogstats/domain/stats"
)

// significanceAlpha is the fixed two-tailed rejection threshold.
const significanceAlpha = 0.05

// TrendAnalyzer fits an ordinary-least-squares line to paired samples and
// tests the slope against zero.
type TrendAnalyzer struct {
	dist tdist.Source
}

// NewTrendAnalyzer creates a trend analyzer over the given source.
func NewTrendAnalyzer(dist tdist.Source) *TrendAnalyzer {
	return &TrendAnalyzer{dist: dist}
}

// insufficientTrend is the verdict for inputs a regression cannot use.
func insufficientTrend() domstats.TrendAnalysis {
	return domstats.TrendAnalysis{
		PValue:       1,
		Significance: SignificanceFor(1, 0),
	}
}

// SignificanceFor maps a p-value and usable pair count onto the closed
// verdict set.
func SignificanceFor(pValue float64, n int) domstats.Significance {
	if n < 3 {
		return domstats.SignificanceInsufficientData
	}
	if pValue < significanceAlpha {
		return domstats.SignificanceSignificant
	}
	return domstats.SignificanceNotSignificant
}

// Analyze regresses y on x. Mismatched lengths or fewer than 3 pairs yield
// the insufficient-data verdict. Constant y (zero total sum of squares) and
// constant x (zero slope denominator) are degenerate: there is no trend to
// test, so the result is the zero slope with p = 1, not_significant.
func (a *TrendAnalyzer) Analyze(x, y []float64) domstats.TrendAnalysis {
	n := len(x)
	if n != len(y) || n < 3 {
		return insufficientTrend()
	}

	fn := float64(n)
	var sumX, sumY, sumXY, sumXX float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
	}

	meanX := sumX / fn
	meanY := sumY / fn

	// Sxx and SStot as deviation sums about the means.
	sxx := sumXX - fn*meanX*meanX
	ssTot := 0.0
	for i := 0; i < n; i++ {
		diff := y[i] - meanY
		ssTot += diff * diff
	}

	if sxx == 0 || ssTot == 0 {
		return domstats.TrendAnalysis{
			PValue:       1,
			Significance: domstats.SignificanceNotSignificant,
		}
	}

	slope := (sumXY - fn*meanX*meanY) / sxx
	intercept := meanY - slope*meanX

	ssRes := 0.0
	for i := 0; i < n; i++ {
		resid := y[i] - (intercept + slope*x[i])
		ssRes += resid * resid
	}

	rSquared := 1 - ssRes/ssTot

	// Slope standard error from residual mean square, df = n-2.
	mse := ssRes / float64(n-2)
	slopeSE := math.Sqrt(mse / sxx)

	t := math.Abs(slope / slopeSE)
	if slopeSE == 0 {
		// Perfect fit: the slope is exact, treat the statistic as unbounded.
		t = math.Inf(1)
	}

	pValue := a.dist.PValue(t, float64(n-2))
	margin := a.dist.CriticalValue(float64(n-2), DefaultConfidenceLevel) * slopeSE

	return domstats.TrendAnalysis{
		Slope:        slope,
		RSquared:     rSquared,
		PValue:       pValue,
		Significance: SignificanceFor(pValue, n),
		ConfidenceInterval: domstats.Interval{
			Low:  slope - margin,
			High: slope + margin,
		},
	}
}
