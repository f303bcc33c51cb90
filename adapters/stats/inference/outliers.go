package inference

import (
	"sort"

	domstats "cogstats/domain/stats"
)

// FilterOutliers partitions values by the 1.5-IQR rule. Quartiles are taken
// at nearest rank (sorted index floor(0.25n) and floor(0.75n), no
// interpolation) to match the bounds earlier pipelines produced. Inputs with
// fewer than 4 values come back unchanged: quartiles on so few points would
// exclude nothing meaningful.
func FilterOutliers(values []float64) domstats.OutlierPartition {
	n := len(values)
	if n < 4 {
		return domstats.OutlierPartition{
			Cleaned:  append([]float64(nil), values...),
			Outliers: []float64{},
		}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	q1 := sorted[n/4]
	q3 := sorted[(3*n)/4]
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	cleaned := make([]float64, 0, n)
	outliers := []float64{}
	for _, v := range values {
		if v < lower || v > upper {
			outliers = append(outliers, v)
		} else {
			cleaned = append(cleaned, v)
		}
	}

	return domstats.OutlierPartition{Cleaned: cleaned, Outliers: outliers}
}
