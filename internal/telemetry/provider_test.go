package telemetry

import (
	"context"
	"testing"
)

func TestSetup_DisabledReturnsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), "marketplace", "http://localhost:4318", false)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetup_EmptyEndpointReturnsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), "marketplace", "", true)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetup_EnabledRegistersProvider(t *testing.T) {
	shutdown, err := Setup(context.Background(), "marketplace", "http://127.0.0.1:1", true)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	// No spans were recorded, so flushing does not touch the unreachable endpoint.
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
