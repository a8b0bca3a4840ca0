package messages

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramResponseTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "bill_tracker",
		Subsystem: "console",
		Name:      "histogram_response_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"status"},
)

var counterOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "bill_tracker",
		Subsystem: "console",
		Name:      "operations_total",
	},
	[]string{"operation", "result"},
)

var gaugeBills = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "bill_tracker",
		Subsystem: "storage",
		Name:      "bills",
	},
)

func observeResponse(elapsed time.Duration, err bool) {
	histogramResponseTime.
		WithLabelValues(strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}

func countOperation(operation, result string) {
	counterOperations.WithLabelValues(operation, result).Inc()
}

func setBills(n int) {
	gaugeBills.Set(float64(n))
}
