package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	OutcomeOK           = "ok"
	OutcomeUserNotFound = "user_not_found"
	OutcomeInvalid      = "invalid"
	OutcomeBinningError = "binning_error"
)

var (
	// Latency of the top-K lookup, excluding HTTP handling
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of top-K recommendation lookups",
		Buckets: prometheus.DefBuckets,
	})

	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommendation lookups by outcome",
	}, []string{"outcome"})

	SegmentationRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rfm_segmentation_runs_total",
		Help: "Total number of RFM segmentation runs by outcome",
	}, []string{"outcome"})

	// Size of the dataset loaded at startup, by kind (users, products, transactions, rules)
	DatasetSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "dataset_loaded_rows",
		Help: "Number of rows loaded at startup by dataset kind",
	}, []string{"kind"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		SegmentationRuns,
		DatasetSize,
	)
}
