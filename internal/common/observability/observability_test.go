package observability

import (
	"context"
	"testing"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartJobSpan_RecordsAttributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracing := newTracing("rental-workers-test", 1.0, sdktrace.WithSpanProcessor(recorder))

	obs := New("rental-workers-test", promclient.NewRegistry()).WithTracing(tracing)
	defer obs.Shutdown()

	_, span := obs.StartJobSpan(context.Background(), "toggle-favorite", 42, 420)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "toggle-favorite", spans[0].Name())

	attrs := map[string]interface{}{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	assert.Equal(t, int64(42), attrs["job.key"])
	assert.Equal(t, int64(420), attrs["process.instance_key"])
}

func TestRecorders_DoNotPanicWithoutExporter(t *testing.T) {
	obs := &Observability{}
	assert.NotPanics(t, func() {
		obs.RecordJobProcessed(context.Background(), "list-favorites", "completed")
		obs.RecordJobDuration(context.Background(), "list-favorites", time.Millisecond)
		_, span := obs.StartJobSpan(context.Background(), "list-favorites", 1, 2)
		span.End()
		obs.Shutdown()
	})
}
