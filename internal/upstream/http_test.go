package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func jsonHandler(t *testing.T, wantPath, body string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, wantPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	})
}

func TestInventoryHTTPGet(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, "/inventory/p1", `{"available":5}`))
	defer srv.Close()

	inv, err := NewInventoryHTTP(srv.URL, time.Second).Get(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, 5, inv.Available)
}

func TestPricingHTTPGet(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, "/pricing/p1", `{"currency":"EUR","amount":12.5}`))
	defer srv.Close()

	price, err := NewPricingHTTP(srv.URL, time.Second).Get(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, "EUR", price.Currency)
	require.Equal(t, 12.5, price.Amount)
}

func TestReviewsHTTPGetPreservesOrder(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, "/reviews/p1", `{"reviews":["b","a","c"]}`))
	defer srv.Close()

	revs, err := NewReviewsHTTP(srv.URL, time.Second).Get(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a", "c"}, revs)
}

func TestHTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewInventoryHTTP(srv.URL, time.Second).Get(context.Background(), "p1")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "inventory", se.Upstream)
	require.Equal(t, http.StatusInternalServerError, se.Code)
	require.False(t, IsTimeout(err))
}

func TestHTTPContextDeadlineClassifiedAsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(500 * time.Millisecond):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err := NewPricingHTTP(srv.URL, time.Second).Get(ctx, "p1")
	require.Error(t, err)
	require.True(t, IsTimeout(err), "deadline errors must classify as timeout, got %v", err)
	require.Less(t, time.Since(start), 400*time.Millisecond)
}

type fakeTimeoutErr struct{ timeout bool }

func (e fakeTimeoutErr) Error() string { return "upstream i/o error" }
func (e fakeTimeoutErr) Timeout() bool { return e.timeout }

func TestIsTimeoutClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("fetch: %w", context.DeadlineExceeded), true},
		{"self classified timeout", fakeTimeoutErr{timeout: true}, true},
		{"self classified non timeout", fakeTimeoutErr{timeout: false}, false},
		{"plain failure", errors.New("boom"), false},
		{"cancellation", context.Canceled, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsTimeout(tc.err))
		})
	}
}
