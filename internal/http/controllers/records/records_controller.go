// Package records contiene el controller de los endpoints /records.
package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/recordsvc/internal/domain/record"
	"github.com/dropDatabas3/recordsvc/internal/domain/repository"
	dto "github.com/dropDatabas3/recordsvc/internal/http/dto/records"
	httperrors "github.com/dropDatabas3/recordsvc/internal/http/errors"
	"github.com/dropDatabas3/recordsvc/internal/http/helpers"
	svc "github.com/dropDatabas3/recordsvc/internal/http/services/records"
	"github.com/dropDatabas3/recordsvc/internal/http/validation"
	"github.com/dropDatabas3/recordsvc/internal/observability/logger"
)

// ParamID es el nombre del parámetro de ruta con el id del record.
const ParamID = "id"

// RecordsController maneja el CRUD de records.
type RecordsController struct {
	service svc.RecordService
}

// NewRecordsController crea un nuevo controller de records.
func NewRecordsController(service svc.RecordService) *RecordsController {
	return &RecordsController{service: service}
}

// List maneja GET /records. Sin records responde 204 sin body.
func (c *RecordsController) List(w http.ResponseWriter, r *http.Request) {
	recs := c.service.List(r.Context())
	if len(recs) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.FromRecords(recs))
}

// Get maneja GET /records/{id}
func (c *RecordsController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}

	rec, err := c.service.Get(r.Context(), id)
	if err != nil {
		httperrors.WriteError(w, mapError(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.FromRecord(rec))
}

// Search maneja GET /records/search?q=
func (c *RecordsController) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if strings.TrimSpace(term) == "" {
		httperrors.WriteError(w, httperrors.ErrMissingSearchTerm)
		return
	}

	recs := c.service.Search(r.Context(), term)
	if len(recs) == 0 {
		httperrors.WriteError(w, httperrors.ErrNoMatches)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.FromRecords(recs))
}

// Create maneja POST /records
func (c *RecordsController) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromWithFields(ctx, logger.Layer("controller"), logger.Op("RecordsController.Create"))

	raw, err := helpers.ReadBody(w, r)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		httperrors.WriteError(w, httperrors.ErrMissingFields)
		return
	}
	if err := checkSchema(validation.CreateRecord, raw); err != nil {
		log.Debug("invalid body", logger.Err(err))
		httperrors.WriteError(w, err)
		return
	}

	var req dto.CreateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON.WithCause(err))
		return
	}

	rec, err := c.service.Create(ctx, req.Name, req.LastName)
	if err != nil {
		httperrors.WriteError(w, mapError(err))
		return
	}

	w.Header().Set("Location", strings.TrimSuffix(r.URL.Path, "/")+"/"+strconv.Itoa(rec.ID()))
	helpers.WriteJSON(w, http.StatusCreated, dto.FromRecord(rec))
}

// Update maneja PUT /records/{id}. Los campos ausentes no se modifican.
func (c *RecordsController) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}

	raw, err := helpers.ReadBody(w, r)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}

	var req dto.UpdateRequest
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := checkSchema(validation.UpdateRecord, raw); err != nil {
			httperrors.WriteError(w, err)
			return
		}
		if err := json.Unmarshal(raw, &req); err != nil {
			httperrors.WriteError(w, httperrors.ErrInvalidJSON.WithCause(err))
			return
		}
	}

	rec, err := c.service.Update(ctx, id, req.Name, req.LastName)
	if err != nil {
		httperrors.WriteError(w, mapError(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.FromRecord(rec))
}

// Delete maneja DELETE /records/{id}
func (c *RecordsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		httperrors.WriteError(w, mapError(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.MessageResponse{Message: "Record deleted successfully"})
}

// parseID lee {id} de la ruta. Solo se aceptan enteros positivos.
func parseID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, ParamID)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, httperrors.ErrInvalidParameter.WithDetail("id must be a positive integer, got " + strconv.Quote(raw))
	}
	return id, nil
}

// checkSchema valida raw contra schema y traduce el resultado a *AppError.
func checkSchema(schema *validation.Schema, raw []byte) error {
	res, err := schema.ValidateBytes(raw)
	if err != nil {
		return httperrors.ErrInvalidJSON.WithCause(err)
	}
	if res.Valid() {
		return nil
	}
	if res.MissingRequired() {
		return httperrors.ErrMissingFields.WithDetail(res.Detail())
	}
	return httperrors.ErrValidation.WithDetail(res.Detail())
}

func mapError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return httperrors.ErrRecordNotFound
	case errors.Is(err, record.ErrInvalid):
		return httperrors.ErrValidation.WithDetail(err.Error()).WithCause(err)
	default:
		return httperrors.ErrInternalServerError.WithCause(err)
	}
}
