package router

import (
	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/recordsvc/internal/http/controllers/health"
)

// HealthRouterDeps contiene las dependencias para el router de health.
type HealthRouterDeps struct {
	Controllers *ctrl.Controllers
}

// RegisterHealthRoutes registra GET / y GET /readyz.
// Sin logging de requests: los health checks son muy frecuentes.
func RegisterHealthRoutes(r chi.Router, deps HealthRouterDeps) {
	c := deps.Controllers

	r.Get("/", c.Health.Index)
	r.Get("/readyz", c.Health.Readyz)
}
