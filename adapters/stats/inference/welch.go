package inference

import (
	"math"

	"cogstats/adapters/stats/tdist"
	domstats "cogstats/domain/stats"
)

// Comparator runs Welch's unequal-variance t-test between two independent
// samples.
type Comparator struct {
	dist tdist.Source
}

// NewComparator creates a comparator over the given source.
func NewComparator(dist tdist.Source) *Comparator {
	return &Comparator{dist: dist}
}

// Compare tests whether two groups share a mean. Either group below 2
// observations yields the neutral result {t=0, p=1, not significant}.
func (c *Comparator) Compare(group1, group2 []float64) domstats.TwoSampleComparison {
	n1 := float64(len(group1))
	n2 := float64(len(group2))
	if n1 < 2 || n2 < 2 {
		return domstats.TwoSampleComparison{PValue: 1}
	}

	mean1 := mean(group1)
	mean2 := mean(group2)
	se1 := sampleVariance(group1, mean1) / n1
	se2 := sampleVariance(group2, mean2) / n2

	t := (mean1 - mean2) / math.Sqrt(se1+se2)

	// Welch-Satterthwaite degrees of freedom.
	df := math.Pow(se1+se2, 2) / (math.Pow(se1, 2)/(n1-1) + math.Pow(se2, 2)/(n2-1))

	pValue := c.dist.PValue(t, df)

	return domstats.TwoSampleComparison{
		TStatistic:  t,
		PValue:      pValue,
		Significant: pValue < significanceAlpha,
	}
}
