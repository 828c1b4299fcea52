// Package admin contiene controllers de operaciones administrativas.
package admin

import (
	"net/http"

	dto "github.com/dropDatabas3/recordsvc/internal/http/dto/records"
	"github.com/dropDatabas3/recordsvc/internal/http/helpers"
	svc "github.com/dropDatabas3/recordsvc/internal/http/services/records"
	"github.com/dropDatabas3/recordsvc/internal/observability/logger"
)

// RecordsController expone operaciones administrativas sobre el store.
type RecordsController struct {
	service svc.RecordService
}

// NewRecordsController crea el controller admin de records.
func NewRecordsController(service svc.RecordService) *RecordsController {
	return &RecordsController{service: service}
}

// Reset maneja POST /admin/records/reset: vacía el store y reinicia los ids.
func (c *RecordsController) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromWithFields(ctx, logger.Layer("controller"), logger.Op("AdminRecordsController.Reset"))

	n := c.service.Reset(ctx)
	log.Info("store reset requested", logger.Count(n))

	helpers.WriteJSON(w, http.StatusOK, dto.ResetResponse{
		Message: "Records cleared",
		Deleted: n,
	})
}
