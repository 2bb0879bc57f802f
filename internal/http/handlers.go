package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fairyhunter13/catalog-aggregator/internal/aggregate"
	"github.com/fairyhunter13/catalog-aggregator/internal/config"
	httpopenapi "github.com/fairyhunter13/catalog-aggregator/internal/http/openapi"
	"github.com/fairyhunter13/catalog-aggregator/internal/obs"
)

// App wires the aggregate service to the HTTP surface and keeps request
// counters for the debug metrics endpoint.
type App struct {
	Cfg     config.Config
	Catalog aggregate.Service
	started time.Time

	fetches  atomic.Uint64
	timeouts atomic.Uint64
	failures atomic.Uint64
}

func NewApp(cfg config.Config, svc aggregate.Service) *App {
	return &App{Cfg: cfg, Catalog: svc, started: time.Now()}
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	prefix := "/products/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, prefix)
	if id == "" || strings.Contains(id, "/") {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}

	a.fetches.Add(1)
	p, err := a.Catalog.Fetch(r.Context(), id)
	if err != nil {
		reqID := RequestIDFromContext(r.Context())
		if errors.Is(err, aggregate.ErrUpstreamTimeout) {
			a.timeouts.Add(1)
			WriteJSONError(w, http.StatusGatewayTimeout, "upstream_timeout", "")
			obs.Logger.Warn("product_fetch_timeout", "request_id", reqID, "product_id", id)
			return
		}
		a.failures.Add(1)
		details := ""
		var ue *aggregate.UpstreamError
		if errors.As(err, &ue) {
			details = ue.Cause.Error()
		}
		WriteJSONError(w, http.StatusBadGateway, "upstream_failure", details)
		obs.Logger.Warn("product_fetch_failed", "request_id", reqID, "product_id", id, "error", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	m := map[string]any{
		"fetches_total":     a.fetches.Load(),
		"upstream_timeouts": a.timeouts.Load(),
		"upstream_failures": a.failures.Load(),
		"uptime_sec":        time.Since(a.started).Seconds(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
