// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server and upstream fetches.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	// FetchTimeout is the shared deadline for one aggregate fetch.
	FetchTimeout time.Duration
	// UpstreamTimeout is the advisory per-call timeout handed to the HTTP
	// capability clients; the fetch deadline stays authoritative.
	UpstreamTimeout time.Duration

	// Upstream base URLs. When any is empty the service runs in simulator
	// mode with in-memory upstreams.
	InventoryURL string
	PricingURL   string
	ReviewsURL   string

	// SimLatency is the artificial latency of simulated upstreams.
	SimLatency time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvms(key string, defMs int) time.Duration {
	ms := atoienv(key, defMs)
	return time.Duration(ms) * time.Millisecond
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 10),
		FetchTimeout:    durenvms("FETCH_TIMEOUT_MS", 200),
		UpstreamTimeout: durenvms("UPSTREAM_TIMEOUT_MS", 500),
		InventoryURL:    getenv("INVENTORY_URL", ""),
		PricingURL:      getenv("PRICING_URL", ""),
		ReviewsURL:      getenv("REVIEWS_URL", ""),
		SimLatency:      durenvms("SIM_LATENCY_MS", 25),
	}
}

// SimulatorMode reports whether any upstream URL is missing, in which case
// the service serves from in-memory upstream doubles.
func (c Config) SimulatorMode() bool {
	return c.InventoryURL == "" || c.PricingURL == "" || c.ReviewsURL == ""
}
