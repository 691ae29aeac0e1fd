package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "roadwatch"
)

var (
	ReportsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "report", "created_total"),
		Help: "Number of reports persisted, by category label",
	}, []string{"type"})
	ReportStoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "report", "store_errors_total"),
		Help: "Number of failed report store operations",
	}, []string{"operation"})
	ReportStoreDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "report", "store_duration_seconds"),
		Help:    "Duration of report store operations in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"operation"})
)
