// Package router arma el árbol de rutas chi del servicio.
package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/recordsvc/internal/http/controllers"
	httperrors "github.com/dropDatabas3/recordsvc/internal/http/errors"
	mw "github.com/dropDatabas3/recordsvc/internal/http/middlewares"
	"github.com/dropDatabas3/recordsvc/internal/metrics"
)

// Deps contiene todo lo necesario para construir el handler raíz.
type Deps struct {
	Controllers *controllers.Controllers

	// BasePath prefija las rutas de records y admin (ej: "/api").
	BasePath string
	// CORSOrigins vacío deshabilita CORS.
	CORSOrigins []string

	// Metrics nil deshabilita instrumentación y el endpoint de scrape.
	Metrics     *metrics.Metrics
	MetricsPath string

	// AdminReset monta POST {base}/admin/records/reset.
	AdminReset bool
}

// New construye el handler raíz con middlewares globales y todas las rutas.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Deben configurarse antes de Route/Mount para que los sub-routers los hereden.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httperrors.WriteError(w, httperrors.ErrRouteNotFound.WithDetail(r.Method+" "+r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
	})

	r.Use(
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithCORS(deps.CORSOrigins),
	)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.WithMetrics)
	}

	c := deps.Controllers
	RegisterHealthRoutes(r, HealthRouterDeps{Controllers: c.Health})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, metricsPath(deps.MetricsPath), deps.Metrics.Handler())
	}

	mount(r, NormalizeBasePath(deps.BasePath), func(api chi.Router) {
		RegisterRecordRoutes(api, RecordRouterDeps{Controllers: c.Records})
		if deps.AdminReset {
			RegisterAdminRoutes(api, AdminRouterDeps{Controllers: c.Admin})
		}
	})

	return r
}

// NormalizeBasePath deja el prefijo como "/x/y" o "" para la raíz.
func NormalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func mount(r chi.Router, base string, fn func(chi.Router)) {
	if base == "" {
		r.Group(fn)
		return
	}
	r.Route(base, fn)
}

func metricsPath(p string) string {
	if p == "" {
		return "/metrics"
	}
	return p
}
