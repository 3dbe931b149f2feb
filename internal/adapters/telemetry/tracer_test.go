package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/wltime/internal/adapters/telemetry"
	"go.trai.ch/wltime/internal/core/ports"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, tp
}

func TestOTelTracer_Start(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracerFrom(tp, "test")

	_, span := tracer.Start(context.Background(), "lookup", ports.WithAttribute("url", "https://example.com"))
	span.SetAttribute("count", 3)
	span.SetAttribute("hit", true)
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("size", int64(7))
	span.SetAttribute("tags", []string{"a"})
	span.SetAttribute("other", struct{}{})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "lookup", spans[0].Name())

	attrs := spans[0].Attributes()
	assert.Contains(t, attrs, attribute.String("url", "https://example.com"))
	assert.Contains(t, attrs, attribute.Int("count", 3))
	assert.Contains(t, attrs, attribute.Bool("hit", true))
	assert.Contains(t, attrs, attribute.Float64("ratio", 0.5))
	assert.Contains(t, attrs, attribute.Int64("size", 7))
	assert.Contains(t, attrs, attribute.StringSlice("tags", []string{"a"}))
	assert.Contains(t, attrs, attribute.String("other", "{}"))
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracerFrom(tp, "test")

	_, span := tracer.Start(context.Background(), "failing")
	span.RecordError(errors.New("boom"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNewOTelTracer_Global(t *testing.T) {
	tracer := telemetry.NewOTelTracer(telemetry.InstrumentationName)

	ctx, span := tracer.Start(context.Background(), "noop")
	assert.NotNil(t, ctx)
	span.End()
}
