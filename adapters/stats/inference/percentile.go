package inference

import "math"

// PercentileRank ranks value against a reference population using the
// percentile-of-score convention with midrank tie averaging. An empty
// population yields the median default of 50.
func PercentileRank(value float64, population []float64) float64 {
	n := len(population)
	if n == 0 {
		return 50
	}

	below := 0
	equal := 0
	for _, v := range population {
		switch {
		case v < value:
			below++
		case v == value:
			equal++
		}
	}

	return math.Round(100 * (float64(below) + float64(equal)/2) / float64(n))
}
