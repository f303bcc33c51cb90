package inference

import (
	"math"
	"testing"

	"cogstats/adapters/stats/tdist"
	domstats "cogstats/domain/stats"
	"cogstats/internal/testkit"
)

func TestTrendAnalyzer_PerfectLine(t *testing.T) {
	analyzer := NewTrendAnalyzer(tdist.NewApproximate())

	trend := analyzer.Analyze(
		[]float64{1, 2, 3, 4, 5},
		[]float64{2, 4, 6, 8, 10},
	)

	if math.Abs(trend.Slope-2) > 1e-9 {
		t.Errorf("slope = %v, expected 2", trend.Slope)
	}
	if math.Abs(trend.RSquared-1) > 1e-9 {
		t.Errorf("r-squared = %v, expected 1", trend.RSquared)
	}
	if trend.PValue > 0.05 {
		t.Errorf("p-value = %v, expected <= 0.05 for a perfect fit", trend.PValue)
	}
	if trend.Significance != domstats.SignificanceSignificant {
		t.Errorf("significance = %v, expected significant", trend.Significance)
	}
	// Zero residuals mean a zero-width slope interval.
	if trend.ConfidenceInterval.Low != 2 || trend.ConfidenceInterval.High != 2 {
		t.Errorf("slope interval = %+v, expected [2, 2]", trend.ConfidenceInterval)
	}
}

func TestTrendAnalyzer_InsufficientData(t *testing.T) {
	analyzer := NewTrendAnalyzer(tdist.NewApproximate())

	cases := []struct {
		name string
		x, y []float64
	}{
		{"empty", nil, nil},
		{"two points", []float64{1, 2}, []float64{3, 4}},
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}},
	}

	for _, c := range cases {
		trend := analyzer.Analyze(c.x, c.y)
		if trend.Significance != domstats.SignificanceInsufficientData {
			t.Errorf("%s: significance = %v, expected insufficient_data", c.name, trend.Significance)
		}
		if trend.Slope != 0 || trend.RSquared != 0 {
			t.Errorf("%s: slope/r-squared must be zero, got %+v", c.name, trend)
		}
		if trend.PValue != 1 {
			t.Errorf("%s: p-value = %v, expected 1", c.name, trend.PValue)
		}
		if trend.ConfidenceInterval.Low != 0 || trend.ConfidenceInterval.High != 0 {
			t.Errorf("%s: interval must be [0, 0], got %+v", c.name, trend.ConfidenceInterval)
		}
	}
}

func TestTrendAnalyzer_ConstantSeries(t *testing.T) {
	analyzer := NewTrendAnalyzer(tdist.NewApproximate())

	// Constant y has no variance to explain; defined result, no division blowup.
	constY := analyzer.Analyze([]float64{1, 2, 3, 4}, []float64{5, 5, 5, 5})
	if constY.Slope != 0 || constY.RSquared != 0 || constY.PValue != 1 {
		t.Errorf("constant y: got %+v, expected zero slope, zero r-squared, p=1", constY)
	}
	if constY.Significance != domstats.SignificanceNotSignificant {
		t.Errorf("constant y: significance = %v, expected not_significant", constY.Significance)
	}

	// Constant x leaves the slope undefined; same degenerate result.
	constX := analyzer.Analyze([]float64{2, 2, 2, 2}, []float64{1, 2, 3, 4})
	if constX.Slope != 0 || constX.PValue != 1 {
		t.Errorf("constant x: got %+v, expected degenerate result", constX)
	}
	if math.IsNaN(constX.RSquared) || math.IsInf(constX.RSquared, 0) {
		t.Errorf("constant x: r-squared must be finite, got %v", constX.RSquared)
	}
}

func TestTrendAnalyzer_NoisyUpwardTrend(t *testing.T) {
	gen := testkit.NewSeriesGenerator(testkit.SeriesConfig{
		Length:    60,
		Intercept: 120,
		Slope:     0.5,
		NoiseSD:   2.0,
		Seed:      7,
	})
	values := gen.Generate()
	x := make([]float64, len(values))
	for i := range x {
		x[i] = float64(i)
	}

	trend := NewTrendAnalyzer(tdist.NewApproximate()).Analyze(x, values)

	if trend.Slope <= 0 {
		t.Errorf("slope = %v, expected positive for an upward series", trend.Slope)
	}
	if trend.Significance != domstats.SignificanceSignificant {
		t.Errorf("significance = %v (p=%v), expected significant", trend.Significance, trend.PValue)
	}
	if trend.ConfidenceInterval.Low > trend.Slope || trend.ConfidenceInterval.High < trend.Slope {
		t.Errorf("slope %v outside its interval %+v", trend.Slope, trend.ConfidenceInterval)
	}
	t.Logf("noisy trend: slope=%.4f r2=%.4f p=%.3f", trend.Slope, trend.RSquared, trend.PValue)
}

func TestTrendAnalyzer_ExactSourceAgrees(t *testing.T) {
	exact := NewTrendAnalyzer(tdist.NewExact())

	trend := exact.Analyze(
		[]float64{1, 2, 3, 4, 5},
		[]float64{2, 4, 6, 8, 10},
	)

	if trend.PValue > 0.05 || trend.Significance != domstats.SignificanceSignificant {
		t.Errorf("exact source: got p=%v %v, expected a significant perfect fit", trend.PValue, trend.Significance)
	}
}
