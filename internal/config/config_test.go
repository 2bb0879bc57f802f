package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("FETCH_TIMEOUT_MS", "")
	t.Setenv("UPSTREAM_TIMEOUT_MS", "")
	t.Setenv("INVENTORY_URL", "")
	t.Setenv("PRICING_URL", "")
	t.Setenv("REVIEWS_URL", "")
	t.Setenv("SIM_LATENCY_MS", "")
	c := Load()
	if c.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr default")
	}
	if c.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout default")
	}
	if c.FetchTimeout != 200*time.Millisecond {
		t.Fatalf("FetchTimeout default")
	}
	if c.UpstreamTimeout != 500*time.Millisecond {
		t.Fatalf("UpstreamTimeout default")
	}
	if c.SimLatency != 25*time.Millisecond {
		t.Fatalf("SimLatency default")
	}
	if !c.SimulatorMode() {
		t.Fatalf("expected simulator mode without upstream URLs")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("FETCH_TIMEOUT_MS", "150")
	t.Setenv("INVENTORY_URL", "http://inventory:8081")
	t.Setenv("PRICING_URL", "http://pricing:8082")
	t.Setenv("REVIEWS_URL", "http://reviews:8083")
	c := Load()
	if c.HTTPAddr != ":9999" {
		t.Fatalf("HTTPAddr override")
	}
	if c.FetchTimeout != 150*time.Millisecond {
		t.Fatalf("FetchTimeout override")
	}
	if c.SimulatorMode() {
		t.Fatalf("expected real upstream mode with all URLs set")
	}
}

func TestLoadInvalidNumberFallsBack(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT_MS", "not-a-number")
	c := Load()
	if c.FetchTimeout != 200*time.Millisecond {
		t.Fatalf("expected default on invalid value, got %v", c.FetchTimeout)
	}
}
