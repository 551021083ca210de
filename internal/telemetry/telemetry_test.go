package telemetry

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestStartStage_NoopProvider(t *testing.T) {
	t.Parallel()
	ctx, span := StartStage(context.Background(), "dispatch", attribute.String("k", "v"))
	if ctx == nil || span == nil {
		t.Fatal("StartStage returned nil context or span")
	}
	EndStage(span, errors.New("boom"))
	EndStage(span, nil)
}

func TestRunAttributes(t *testing.T) {
	t.Parallel()
	attrs := RunAttributes("id-1", "simpson", 100, 4)
	want := map[attribute.Key]string{
		"picalc.run_id":    "id-1",
		"picalc.method":    "simpson",
		"picalc.units":     "100",
		"picalc.pool_size": "4",
	}
	if len(attrs) != len(want) {
		t.Fatalf("got %d attributes, want %d", len(attrs), len(want))
	}
	for _, kv := range attrs {
		if got := kv.Value.Emit(); got != want[kv.Key] {
			t.Errorf("%s = %q, want %q", kv.Key, got, want[kv.Key])
		}
	}
}
