package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "rental-workers/jobs"

// Tracing owns the SDK tracer provider.
type Tracing struct {
	provider *sdktrace.TracerProvider
}

// NewJaegerTracing exports spans to a Jaeger collector endpoint and installs the
// provider globally.
func NewJaegerTracing(serviceName, endpoint string, sampleRatio float64) (*Tracing, error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(endpoint)))
	if err != nil {
		return nil, fmt.Errorf("create jaeger exporter: %w", err)
	}
	return newTracing(serviceName, sampleRatio, sdktrace.WithBatcher(exp)), nil
}

func newTracing(serviceName string, sampleRatio float64, opts ...sdktrace.TracerProviderOption) *Tracing {
	opts = append(opts,
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
	)
	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)
	return &Tracing{provider: provider}
}

func (t *Tracing) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

func (o *Observability) tracer() trace.Tracer {
	if o.tracing != nil {
		return o.tracing.provider.Tracer(tracerName)
	}
	return otel.Tracer(tracerName)
}

// StartJobSpan opens a span for one activated job.
func (o *Observability) StartJobSpan(ctx context.Context, taskType string, jobKey, processInstanceKey int64) (context.Context, trace.Span) {
	return o.tracer().Start(ctx, taskType,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("job.type", taskType),
			attribute.Int64("job.key", jobKey),
			attribute.Int64("process.instance_key", processInstanceKey),
		),
	)
}
