// Package aggregate coordinates concurrent fetches from the three upstreams
// under one shared deadline.
package aggregate

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fairyhunter13/catalog-aggregator/internal/model"
	"github.com/fairyhunter13/catalog-aggregator/internal/upstream"
)

// Service fans out to the three upstreams with a shared deadline. It holds
// no per-call state; one value serves any number of concurrent Fetch calls.
type Service struct {
	Inventory upstream.InventoryClient
	Pricing   upstream.PricingClient
	Reviews   upstream.ReviewsClient

	// Timeout bounds every Fetch call, measured from its start. A Timeout
	// of zero or less makes Fetch fail immediately with ErrUpstreamTimeout.
	Timeout time.Duration
}

// Fetch retrieves inventory, price, and reviews for id concurrently and
// assembles the composite Product. The id is passed to every upstream
// unmodified and echoed back in the result.
//
// The first non-timeout failure cancels the remaining fetches and surfaces
// as *UpstreamError wrapping the cause. If the deadline elapses, every
// in-flight fetch is cancelled and the call reports ErrUpstreamTimeout;
// timeout takes precedence even when another upstream failed around the
// same moment. Fetch returns only after every spawned fetch has stopped.
//
// Classification runs only when the join reports an error, so a call where
// all three values arrive, even right at the deadline, is a success.
func (s Service) Fetch(ctx context.Context, id string) (model.Product, error) {
	if s.Timeout <= 0 {
		return model.Product{}, ErrUpstreamTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	// gctx is cancelled by the first goroutine to fail, which tells the
	// siblings to abort their in-flight I/O.
	g, gctx := errgroup.WithContext(ctx)

	var (
		inv     model.Inventory
		price   model.Price
		reviews []string
	)
	g.Go(func() error {
		var err error
		inv, err = s.Inventory.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		price, err = s.Pricing.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = s.Reviews.Get(gctx, id)
		return err
	})

	// Wait blocks until all three goroutines are terminal, so nothing
	// spawned here outlives the call. The result slots are only read
	// after that point.
	if err := g.Wait(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) || upstream.IsTimeout(err) {
			return model.Product{}, ErrUpstreamTimeout
		}
		return model.Product{}, &UpstreamError{Cause: err}
	}

	return model.NewProduct(id, inv, price, reviews), nil
}
