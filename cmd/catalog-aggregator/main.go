// Package main boots the Catalog Aggregator HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fairyhunter13/catalog-aggregator/internal/aggregate"
	"github.com/fairyhunter13/catalog-aggregator/internal/config"
	httpapi "github.com/fairyhunter13/catalog-aggregator/internal/http"
	"github.com/fairyhunter13/catalog-aggregator/internal/model"
	"github.com/fairyhunter13/catalog-aggregator/internal/obs"
	"github.com/fairyhunter13/catalog-aggregator/internal/sim"
	"github.com/fairyhunter13/catalog-aggregator/internal/upstream"
)

func main() {
	cfg := config.Load()
	obs.InitLogger()
	obs.Logger.Info("service_starting")

	inventory, pricing, reviews := buildCapabilities(cfg)
	svc := aggregate.Service{
		Inventory: inventory,
		Pricing:   pricing,
		Reviews:   reviews,
		Timeout:   cfg.FetchTimeout,
	}

	app := httpapi.NewApp(cfg, svc)
	mux := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	ctxSrv, cancelSrv := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelSrv()
	if err := srv.Shutdown(ctxSrv); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}

// buildCapabilities wires the three upstream clients: resty-backed HTTP
// clients when all upstream URLs are configured, in-memory simulated
// upstreams otherwise.
func buildCapabilities(cfg config.Config) (upstream.InventoryClient, upstream.PricingClient, upstream.ReviewsClient) {
	if !cfg.SimulatorMode() {
		return upstream.NewInventoryHTTP(cfg.InventoryURL, cfg.UpstreamTimeout),
			upstream.NewPricingHTTP(cfg.PricingURL, cfg.UpstreamTimeout),
			upstream.NewReviewsHTTP(cfg.ReviewsURL, cfg.UpstreamTimeout)
	}
	obs.Logger.Info("simulator_mode", "latency_ms", cfg.SimLatency.Milliseconds())
	st := sim.NewStore()
	seedDemo(st)
	return sim.NewInventory(st, cfg.SimLatency),
		sim.NewPricing(st, cfg.SimLatency),
		sim.NewReviews(st, cfg.SimLatency)
}

func seedDemo(st *sim.Store) {
	st.Seed("p1", sim.Record{
		Inventory: model.Inventory{Available: 3},
		Price:     model.Price{Currency: "USD", Amount: 9.99},
		Reviews:   []string{"ok", "great"},
	})
	st.Seed("p2", sim.Record{
		Inventory: model.Inventory{Available: 0},
		Price:     model.Price{Currency: "EUR", Amount: 149.0},
		Reviews:   []string{},
	})
}
