package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected noop shutdown, got %v", err)
	}
}

func TestNewResourceDefaultsServiceName(t *testing.T) {
	res := newResource("")
	value, ok := res.Set().Value(attribute.Key("service.name"))
	if !ok || value.AsString() != "ipam-ledger" {
		t.Fatalf("unexpected service name: %v", value.AsString())
	}

	res = newResource("ipam-edge")
	value, _ = res.Set().Value(attribute.Key("service.name"))
	if value.AsString() != "ipam-edge" {
		t.Fatalf("unexpected service name: %v", value.AsString())
	}
}
