package harness

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics are registered on the Runner's Registerer; a nil Registerer
// leaves them unregistered.
type metrics struct {
	pairs         *prometheus.CounterVec
	disagreements prometheus.Counter
	individual    prometheus.Histogram
	duration      prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		pairs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "isomorph",
			Name:      "pairs_total",
			Help:      "Decided pairs by outcome",
		}, []string{"outcome"}),
		disagreements: f.NewCounter(prometheus.CounterOpts{
			Namespace: "isomorph",
			Name:      "disagreements_total",
			Help:      "Pairs whose signature verdict and verification differ",
		}),
		individual: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "isomorph",
			Name:      "individualized_vertices",
			Help:      "Vertices individualized per mapping",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "isomorph",
			Name:      "decide_duration_seconds",
			Help:      "Time to decide one pair",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}
