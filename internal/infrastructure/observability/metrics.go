package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RepositoryCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repository_calls_total",
			Help: "Total number of repository method calls",
		},
		[]string{"method", "status"},
	)

	RepositoryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "repository_duration_seconds",
			Help:    "Duration of repository method calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// DeployTriggers counts build hook decisions: sent, throttled, disabled, failed.
	DeployTriggers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deploy_triggers_total",
			Help: "Total number of static site rebuild trigger attempts",
		},
		[]string{"result"},
	)

	PreviewVerifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preview_verifications_total",
			Help: "Total number of preview token verifications",
		},
		[]string{"result"},
	)
)

func InitMetrics(reg prometheus.Registerer) {
	reg.MustRegister(RepositoryCalls, RepositoryDuration, DeployTriggers, PreviewVerifications)
}
