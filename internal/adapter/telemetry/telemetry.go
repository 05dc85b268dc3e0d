package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type Telemetry struct {
	PrometheusRegistry *prometheus.Registry
	tracerProvider     *sdktrace.TracerProvider
}

type Config struct {
	ServiceName    string
	ServiceVersion string
}

// Init wires the global tracer provider and a dedicated prometheus
// registry. Spans go to stdout; a collector exporter can replace the
// stdouttrace one without touching callers.
func Init(cfg Config) (*Telemetry, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())

	if err != nil {
		return nil, err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)

	return &Telemetry{
		PrometheusRegistry: prometheus.NewRegistry(),
		tracerProvider:     tp,
	}, nil
}

func (t *Telemetry) Shutdown(ctx context.Context) error {
	return t.tracerProvider.Shutdown(ctx)
}
