package telemetry

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/wltime/internal/core/domain"
)

// Summary counts the outcome of duration lookups.
type Summary struct {
	Hits     int
	Fetched  int
	Failures int
}

// Total is the number of lookups recorded.
func (s Summary) Total() int {
	return s.Hits + s.Fetched + s.Failures
}

func (s Summary) String() string {
	return fmt.Sprintf("resolved %d items: %d cached, %d fetched, %d failed",
		s.Total(), s.Hits, s.Fetched, s.Failures)
}

// Tally implements sdktrace.SpanProcessor and counts finished lookup spans.
type Tally struct {
	mu      sync.Mutex
	summary Summary
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{}
}

// NewProvider returns a tracer provider that reports every span to tally.
func NewProvider(tally *Tally) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(tally))
}

// OnStart does nothing.
func (t *Tally) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (t *Tally) OnEnd(s sdktrace.ReadOnlySpan) {
	if s.Name() != domain.LookupSpanName {
		return
	}

	hit := false
	for _, kv := range s.Attributes() {
		if kv.Key == attribute.Key(domain.AttrCacheHit) {
			hit = kv.Value.AsBool()
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	switch {
	case s.Status().Code == codes.Error:
		t.summary.Failures++
	case hit:
		t.summary.Hits++
	default:
		t.summary.Fetched++
	}
}

// Summary returns the counts recorded so far.
func (t *Tally) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.summary
}

// ForceFlush does nothing.
func (t *Tally) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (t *Tally) Shutdown(_ context.Context) error {
	return nil
}
