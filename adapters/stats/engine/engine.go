// Package engine composes the inference toolkit over batches of named
// metric series. It owns no data and keeps no state between calls; the
// caller supplies numeric series and receives value records back.
package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"cogstats/adapters/stats/inference"
	"cogstats/adapters/stats/tdist"
	"cogstats/domain/core"
	domstats "cogstats/domain/stats"
	"cogstats/internal"
	"cogstats/internal/config"
	"cogstats/internal/errors"
)

// Series is one behavioral metric sample to analyze.
type Series struct {
	Key    core.MetricKey
	Values []float64
	// X is the optional explicit regressor (e.g. days since baseline).
	// When nil, the observation index is used.
	X []float64
	// Reference is the optional population the sample mean is ranked
	// against. When nil the rank stays at the median default.
	Reference []float64
}

// MetricReport bundles every toolkit output for one series.
type MetricReport struct {
	Key        core.MetricKey              `json:"key"`
	Summary    domstats.SummaryStats       `json:"summary"`
	Result     domstats.StatisticalResult  `json:"result"`
	Trend      domstats.TrendAnalysis      `json:"trend"`
	Quality    domstats.DataQualityMetrics `json:"quality"`
	Partition  domstats.OutlierPartition   `json:"partition"`
	Percentile float64                     `json:"percentile"`
}

// BatchReport is the result of analyzing a batch of series.
type BatchReport struct {
	ReportID core.ReportID  `json:"report_id"`
	Metrics  []MetricReport `json:"metrics"`
}

// Engine runs the full inference pipeline per metric, concurrently across
// metrics. All components are stateless, so a single Engine is safe for
// concurrent use.
type Engine struct {
	estimator  *inference.Estimator
	trends     *inference.TrendAnalyzer
	comparator *inference.Comparator
	logger     *internal.Logger
}

// New builds an engine from configuration.
func New(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}

	var dist tdist.Source = tdist.NewApproximate()
	if cfg.Distribution == config.DistributionExact {
		dist = tdist.NewExact()
	}

	return &Engine{
		estimator:  inference.NewEstimator(dist, cfg.ConfidenceLevel),
		trends:     inference.NewTrendAnalyzer(dist),
		comparator: inference.NewComparator(dist),
		logger:     internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel)),
	}
}

// Analyze runs the pipeline for every series concurrently and returns one
// report per series, in input order. The only error surface is input shape:
// an explicit X whose length differs from Values. Degenerate numeric input
// never errors.
func (e *Engine) Analyze(ctx context.Context, batch []Series) (*BatchReport, error) {
	report := &BatchReport{
		ReportID: core.NewReportID(),
		Metrics:  make([]MetricReport, len(batch)),
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, series := range batch {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			metric, err := e.analyzeOne(series)
			if err != nil {
				return err
			}
			report.Metrics[i] = metric
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Info("analyzed batch %s: %d metrics", report.ReportID, len(report.Metrics))
	return report, nil
}

// Compare runs the two-sample comparison between two independent samples,
// e.g. a metric under two recording conditions.
func (e *Engine) Compare(group1, group2 []float64) domstats.TwoSampleComparison {
	return e.comparator.Compare(group1, group2)
}

func (e *Engine) analyzeOne(series Series) (MetricReport, error) {
	if series.X != nil && len(series.X) != len(series.Values) {
		return MetricReport{}, errors.New(errors.CodeValidationError,
			"series "+series.Key.String()+": x and values lengths differ")
	}

	x := series.X
	if x == nil {
		x = make([]float64, len(series.Values))
		for i := range x {
			x[i] = float64(i)
		}
	}

	partition := inference.FilterOutliers(series.Values)
	result := e.estimator.Result(partition.Cleaned)

	metric := MetricReport{
		Key:        series.Key,
		Summary:    inference.Summarize(series.Values),
		Result:     result,
		Trend:      e.trends.Analyze(x, series.Values),
		Quality:    inference.AssessQuality(series.Values, partition.Cleaned, partition.Outliers),
		Partition:  partition,
		Percentile: inference.PercentileRank(result.Value, series.Reference),
	}

	e.logger.Debug("metric %s: n=%d quality=%s trend=%s",
		series.Key, len(series.Values), metric.Quality.Reliability, metric.Trend.Significance)

	return metric, nil
}
