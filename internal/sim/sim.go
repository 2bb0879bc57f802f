// Package sim provides in-memory doubles for the three upstreams, used in
// local simulator mode and in tests. Each client honors ctx cancellation
// promptly even while waiting out its configured latency.
package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fairyhunter13/catalog-aggregator/internal/model"
)

// Record holds the simulated upstream data for one product.
type Record struct {
	Inventory model.Inventory
	Price     model.Price
	Reviews   []string
}

// NotFoundError reports an unknown product id. It is an ordinary upstream
// failure, never classified as a timeout.
type NotFoundError struct {
	Upstream string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no data for product %q", e.Upstream, e.ID)
}

// Store keeps seeded product records shared by the three simulated upstreams.
type Store struct {
	mu sync.RWMutex
	m  map[string]Record
}

func NewStore() *Store {
	return &Store{m: make(map[string]Record)}
}

// Seed registers or replaces the record for a product id.
func (s *Store) Seed(id string, rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = rec
}

func (s *Store) get(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.m[id]
	return rec, ok
}

// client carries the behavior shared by the three simulated upstreams.
// Fail, when set, makes every call return that error after the latency wait.
type client struct {
	name    string
	store   *Store
	latency time.Duration

	Fail error
}

func (c *client) lookup(ctx context.Context, id string) (Record, error) {
	if c.latency > 0 {
		t := time.NewTimer(c.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Record{}, ctx.Err()
		case <-t.C:
		}
	}
	if c.Fail != nil {
		return Record{}, c.Fail
	}
	rec, ok := c.store.get(id)
	if !ok {
		return Record{}, &NotFoundError{Upstream: c.name, ID: id}
	}
	return rec, nil
}

// Inventory simulates the inventory upstream.
type Inventory struct{ client }

func NewInventory(st *Store, latency time.Duration) *Inventory {
	return &Inventory{client{name: "inventory", store: st, latency: latency}}
}

func (c *Inventory) Get(ctx context.Context, id string) (model.Inventory, error) {
	rec, err := c.lookup(ctx, id)
	if err != nil {
		return model.Inventory{}, err
	}
	return rec.Inventory, nil
}

// Pricing simulates the pricing upstream.
type Pricing struct{ client }

func NewPricing(st *Store, latency time.Duration) *Pricing {
	return &Pricing{client{name: "pricing", store: st, latency: latency}}
}

func (c *Pricing) Get(ctx context.Context, id string) (model.Price, error) {
	rec, err := c.lookup(ctx, id)
	if err != nil {
		return model.Price{}, err
	}
	return rec.Price, nil
}

// Reviews simulates the reviews upstream. Review order is returned exactly
// as seeded.
type Reviews struct{ client }

func NewReviews(st *Store, latency time.Duration) *Reviews {
	return &Reviews{client{name: "reviews", store: st, latency: latency}}
}

func (c *Reviews) Get(ctx context.Context, id string) ([]string, error) {
	rec, err := c.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	return rec.Reviews, nil
}
