// Package health contiene el controller de health checks y del índice del servicio.
package health

import (
	"net/http"

	dto "github.com/dropDatabas3/recordsvc/internal/http/dto/health"
	"github.com/dropDatabas3/recordsvc/internal/http/helpers"
	svc "github.com/dropDatabas3/recordsvc/internal/http/services/health"
	"github.com/dropDatabas3/recordsvc/internal/observability/logger"
)

// HealthController maneja GET /readyz y GET /.
type HealthController struct {
	service svc.HealthService
	info    dto.InfoResponse
}

// NewHealthController crea un nuevo controller de health check.
// info es la respuesta fija del índice.
func NewHealthController(service svc.HealthService, info dto.InfoResponse) *HealthController {
	return &HealthController{service: service, info: info}
}

// Readyz maneja GET /readyz
func (c *HealthController) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromWithFields(ctx, logger.Layer("controller"), logger.Op("HealthController.Readyz"))

	response := c.service.Check(ctx)

	if response.Version != "" {
		w.Header().Set("X-Service-Version", response.Version)
	}

	statusCode := http.StatusOK
	if response.Status == "unavailable" {
		statusCode = http.StatusServiceUnavailable
	}

	log.Debug("health check completed",
		logger.String("status", response.Status),
		logger.Int("components_count", len(response.Components)),
	)

	helpers.WriteJSON(w, statusCode, response)
}

// Index maneja GET / con el catálogo de endpoints.
func (c *HealthController) Index(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, c.info)
}
