package telemetry

import (
	"context"
	"testing"
)

func TestTracerWithoutSetup(t *testing.T) {
	// Without Setup the global provider is a no-op; spans must still be usable.
	_, span := Tracer("test").Start(context.Background(), "test.span")
	defer span.End()

	if span.IsRecording() || span.SpanContext().IsSampled() {
		t.Error("span from the default provider should not be sampled")
	}
}
