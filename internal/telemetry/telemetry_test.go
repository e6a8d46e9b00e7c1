package telemetry

import (
	"context"
	"testing"
)

func TestSetupDisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	if Enabled() {
		t.Fatalf("Enabled() = true, want false")
	}
	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown returned error: %v", err)
	}
}

func TestNoopTracerRecordsNothing(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "collate.run")
	defer span.End()

	if span.IsRecording() {
		t.Errorf("noop span IsRecording() = true, want false")
	}
}
