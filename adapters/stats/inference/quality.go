package inference

import (
	domstats "cogstats/domain/stats"
)

// Reliability tier thresholds. Fixed design constants; high is checked
// before medium.
const (
	highReliabilityMinValid   = 50
	highReliabilityMinScore   = 0.8
	mediumReliabilityMinValid = 20
	mediumReliabilityMinScore = 0.6
)

// AssessQuality grades a sample from its raw, retained and excluded values.
// QualityScore weights completeness by the retained fraction after outlier
// exclusion; an empty raw set scores 0.
func AssessQuality(raw, valid, outliers []float64) domstats.DataQualityMetrics {
	total := len(raw)
	validCount := len(valid)
	outlierCount := len(outliers)

	completeness := 0.0
	outlierRate := 0.0
	if total > 0 {
		completeness = float64(validCount) / float64(total)
		outlierRate = float64(outlierCount) / float64(total)
	}
	score := completeness * (1 - outlierRate)

	reliability := domstats.ReliabilityLow
	switch {
	case validCount >= highReliabilityMinValid && score >= highReliabilityMinScore:
		reliability = domstats.ReliabilityHigh
	case validCount >= mediumReliabilityMinValid && score >= mediumReliabilityMinScore:
		reliability = domstats.ReliabilityMedium
	}

	return domstats.DataQualityMetrics{
		TotalSegments: total,
		ValidSegments: validCount,
		Outliers:      outlierCount,
		QualityScore:  score,
		Reliability:   reliability,
	}
}
