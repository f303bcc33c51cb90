package inference

import (
	"math"
	"testing"

	domstats "cogstats/domain/stats"
)

func TestAssessQuality_MediumTier(t *testing.T) {
	metrics := AssessQuality(make([]float64, 100), make([]float64, 80), make([]float64, 10))

	// completeness 0.8, outlier rate 0.1 -> score 0.72
	if math.Abs(metrics.QualityScore-0.72) > 1e-9 {
		t.Errorf("quality score = %v, expected 0.72", metrics.QualityScore)
	}
	// 80 valid clears the medium floor but the score misses the high floor
	if metrics.Reliability != domstats.ReliabilityMedium {
		t.Errorf("reliability = %v, expected medium", metrics.Reliability)
	}
}

func TestAssessQuality_HighTier(t *testing.T) {
	metrics := AssessQuality(make([]float64, 200), make([]float64, 180), make([]float64, 5))

	if math.Abs(metrics.QualityScore-0.8775) > 1e-9 {
		t.Errorf("quality score = %v, expected 0.8775", metrics.QualityScore)
	}
	if metrics.Reliability != domstats.ReliabilityHigh {
		t.Errorf("reliability = %v, expected high", metrics.Reliability)
	}
	if metrics.TotalSegments != 200 || metrics.ValidSegments != 180 || metrics.Outliers != 5 {
		t.Errorf("counts not carried through: %+v", metrics)
	}
}

func TestAssessQuality_EmptyAndLow(t *testing.T) {
	empty := AssessQuality(nil, nil, nil)
	if empty.QualityScore != 0 {
		t.Errorf("empty input: score = %v, expected 0", empty.QualityScore)
	}
	if empty.Reliability != domstats.ReliabilityLow {
		t.Errorf("empty input: reliability = %v, expected low", empty.Reliability)
	}

	// Plenty of valid segments but a poor score still lands in low.
	low := AssessQuality(make([]float64, 100), make([]float64, 55), make([]float64, 40))
	if low.Reliability != domstats.ReliabilityLow {
		t.Errorf("score %v with 55 valid: reliability = %v, expected low", low.QualityScore, low.Reliability)
	}
}
