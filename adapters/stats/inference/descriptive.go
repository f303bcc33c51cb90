// Package inference contains the statistical toolkit applied to behavioral
// metric samples: descriptive summaries, IQR outlier screening, confidence
// intervals, trend regression, quality grading, percentile ranking and
// two-sample comparison. Every operation is a pure function over its input;
// degenerate samples map to documented defaults, never to errors.
package inference

import (
	mstats "github.com/montanaflynn/stats"

	domstats "cogstats/domain/stats"
)

// Summarize computes the descriptive brief for one metric series.
// An empty series yields the zero summary.
func Summarize(data []float64) domstats.SummaryStats {
	if len(data) == 0 {
		return domstats.SummaryStats{}
	}

	mean, _ := mstats.Mean(data)
	stdDev, _ := mstats.StandardDeviation(data)
	min, _ := mstats.Min(data)
	max, _ := mstats.Max(data)
	median, _ := mstats.Median(data)
	q25, _ := mstats.Percentile(data, 25)
	q75, _ := mstats.Percentile(data, 75)

	return domstats.SummaryStats{
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Median: median,
		Q25:    q25,
		Q75:    q75,
	}
}

// mean is the arithmetic mean, 0 for an empty slice.
func mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// sampleVariance is the Bessel-corrected variance, 0 for n < 2.
// Interval estimation, trend testing and the two-sample comparison all
// share this one definition so their moments never diverge.
func sampleVariance(data []float64, m float64) float64 {
	if len(data) < 2 {
		return 0
	}
	sumSq := 0.0
	for _, v := range data {
		diff := v - m
		sumSq += diff * diff
	}
	return sumSq / float64(len(data)-1)
}
