package upstream

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fairyhunter13/catalog-aggregator/internal/model"
)

// StatusError is returned when an upstream answers with a non-2xx status.
type StatusError struct {
	Upstream string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s upstream returned status %d", e.Upstream, e.Code)
}

func newREST(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}

// InventoryHTTP fetches inventory from GET {base}/inventory/{id}.
type InventoryHTTP struct {
	c *resty.Client
}

// NewInventoryHTTP builds an inventory client. timeout is the advisory
// per-call bound; the ctx passed to Get still wins.
func NewInventoryHTTP(baseURL string, timeout time.Duration) *InventoryHTTP {
	return &InventoryHTTP{c: newREST(baseURL, timeout)}
}

func (h *InventoryHTTP) Get(ctx context.Context, id string) (model.Inventory, error) {
	var out struct {
		Available int `json:"available"`
	}
	resp, err := h.c.R().
		SetContext(ctx).
		SetResult(&out).
		SetPathParam("id", id).
		Get("/inventory/{id}")
	if err != nil {
		return model.Inventory{}, fmt.Errorf("inventory fetch: %w", err)
	}
	if resp.IsError() {
		return model.Inventory{}, &StatusError{Upstream: "inventory", Code: resp.StatusCode()}
	}
	return model.Inventory{Available: out.Available}, nil
}

// PricingHTTP fetches prices from GET {base}/pricing/{id}.
type PricingHTTP struct {
	c *resty.Client
}

func NewPricingHTTP(baseURL string, timeout time.Duration) *PricingHTTP {
	return &PricingHTTP{c: newREST(baseURL, timeout)}
}

func (h *PricingHTTP) Get(ctx context.Context, id string) (model.Price, error) {
	var out struct {
		Currency string  `json:"currency"`
		Amount   float64 `json:"amount"`
	}
	resp, err := h.c.R().
		SetContext(ctx).
		SetResult(&out).
		SetPathParam("id", id).
		Get("/pricing/{id}")
	if err != nil {
		return model.Price{}, fmt.Errorf("pricing fetch: %w", err)
	}
	if resp.IsError() {
		return model.Price{}, &StatusError{Upstream: "pricing", Code: resp.StatusCode()}
	}
	return model.Price{Currency: out.Currency, Amount: out.Amount}, nil
}

// ReviewsHTTP fetches reviews from GET {base}/reviews/{id}.
type ReviewsHTTP struct {
	c *resty.Client
}

func NewReviewsHTTP(baseURL string, timeout time.Duration) *ReviewsHTTP {
	return &ReviewsHTTP{c: newREST(baseURL, timeout)}
}

func (h *ReviewsHTTP) Get(ctx context.Context, id string) ([]string, error) {
	var out struct {
		Reviews []string `json:"reviews"`
	}
	resp, err := h.c.R().
		SetContext(ctx).
		SetResult(&out).
		SetPathParam("id", id).
		Get("/reviews/{id}")
	if err != nil {
		return nil, fmt.Errorf("reviews fetch: %w", err)
	}
	if resp.IsError() {
		return nil, &StatusError{Upstream: "reviews", Code: resp.StatusCode()}
	}
	return out.Reviews, nil
}
