// Package upstream defines the contracts for the three data sources the
// aggregator fans out to, plus HTTP implementations of them.
package upstream

import (
	"context"
	"errors"

	"github.com/fairyhunter13/catalog-aggregator/internal/model"
)

// InventoryClient fetches the stock level for a product.
//
// The ctx carries the coordinator's authoritative deadline; whatever timeout
// an implementation applies internally is advisory only. Implementations
// must abort promptly when ctx is cancelled.
type InventoryClient interface {
	Get(ctx context.Context, id string) (model.Inventory, error)
}

// PricingClient fetches the current price for a product.
type PricingClient interface {
	Get(ctx context.Context, id string) (model.Price, error)
}

// ReviewsClient fetches review texts for a product, in upstream order.
type ReviewsClient interface {
	Get(ctx context.Context, id string) ([]string, error)
}

// IsTimeout reports whether err is timeout-like. Classification is
// structural, never textual: a deadline error anywhere in the chain, or a
// cause that classifies itself through the net.Error Timeout convention.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	if errors.As(err, &t) {
		return t.Timeout()
	}
	return false
}
