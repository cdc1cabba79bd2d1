package observability

import (
	"context"

	"github.com/honeynil/headless-broker/internal/config"
	"github.com/honeynil/headless-broker/internal/infrastructure/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// Setup configures logging, service metrics and tracing, and returns the tracer shutdown.
func Setup(cfg *config.Config) func(context.Context) error {
	observability.InitLogger(cfg.LogLevel)
	observability.InitMetrics(prometheus.DefaultRegisterer)
	return observability.InitTracing(cfg.ServiceName, cfg.OTLPEndpoint)
}
