package postgres

import (
	"context"
	"time"

	"github.com/honeynil/headless-broker/internal/infrastructure/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "postgres-repository"

// startCall opens a span for a repository method. The returned func records the
// outcome in the span and in the repository metrics, and must be deferred.
func startCall(ctx context.Context, method string) (context.Context, func(err error)) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, method)
	start := time.Now()
	return ctx, func(err error) {
		finishCall(span, method, start, err)
	}
}

func finishCall(span trace.Span, method string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	observability.RepositoryCalls.WithLabelValues(method, status).Inc()
	observability.RepositoryDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	span.End()
}
