package common

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// NewTracerProvider returns an OpenTelemetry TracerProvider configured to
// export spans to a Zipkin-compatible collector. The collector URL is read
// from ZIPKIN_COLLECTOR_URL.
func NewTracerProvider(serviceName, environment string, id int64) (*tracesdk.TracerProvider, error) {
	url := GetEnv("ZIPKIN_COLLECTOR_URL", "http://localhost:9411/api/v2/spans")

	exporter, err := zipkin.New(url)
	if err != nil {
		return nil, err
	}

	tp := tracesdk.NewTracerProvider(
		// Always be sure to batch in production.
		tracesdk.WithBatcher(exporter),
		// Record information about this application in a Resource.
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			attribute.String("environment", environment),
			attribute.Int64("ID", id),
		)),
	)

	return tp, nil
}
