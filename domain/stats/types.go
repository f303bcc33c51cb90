package stats

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// Interval is a two-sided confidence interval.
type Interval struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Significance is the closed verdict set for trend testing.
type Significance string

const (
	SignificanceSignificant      Significance = "significant"
	SignificanceNotSignificant   Significance = "not_significant"
	SignificanceInsufficientData Significance = "insufficient_data"
)

// Reliability is the coarse trust tier assigned to a metric sample.
type Reliability string

const (
	ReliabilityHigh   Reliability = "high"
	ReliabilityMedium Reliability = "medium"
	ReliabilityLow    Reliability = "low"
)

// StatisticalResult is the canonical one-sample summary.
// INVARIANTS:
// - ConfidenceInterval.Low <= Value <= ConfidenceInterval.High when SampleSize >= 2
// - all fields zero when SampleSize == 0
// - PValue is set only by tests that produce one; one-sample estimation leaves it nil
type StatisticalResult struct {
	Value              float64  `json:"value"`
	ConfidenceInterval Interval `json:"confidence_interval"`
	StandardError      float64  `json:"standard_error"`
	SampleSize         int      `json:"sample_size"`
	PValue             *float64 `json:"p_value,omitempty"`
}

// TrendAnalysis is the result of fitting a line to paired samples.
// Significance is insufficient_data iff fewer than 3 usable pairs were given.
type TrendAnalysis struct {
	Slope              float64      `json:"slope"`
	RSquared           float64      `json:"r_squared"`
	PValue             float64      `json:"p_value"`
	Significance       Significance `json:"significance"`
	ConfidenceInterval Interval     `json:"confidence_interval"`
}

// DataQualityMetrics grades how much trust a sample deserves.
// QualityScore = (valid/total) * (1 - outliers/total), 0 when total is 0.
type DataQualityMetrics struct {
	TotalSegments int         `json:"total_segments"`
	ValidSegments int         `json:"valid_segments"`
	Outliers      int         `json:"outliers"`
	QualityScore  float64     `json:"quality_score"`
	Reliability   Reliability `json:"reliability"`
}

// OutlierPartition splits a sample into retained and excluded values.
// Cleaned and Outliers are disjoint and exhaustive for inputs of length >= 4;
// shorter inputs come back untouched in Cleaned.
type OutlierPartition struct {
	Cleaned  []float64 `json:"cleaned"`
	Outliers []float64 `json:"outliers"`
}

// TwoSampleComparison is the result of an unequal-variance mean comparison.
type TwoSampleComparison struct {
	TStatistic  float64 `json:"t_statistic"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
}

// SummaryStats is the descriptive brief computed for every metric series.
type SummaryStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}
