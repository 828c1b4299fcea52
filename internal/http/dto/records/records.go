// Package records contiene los DTOs de los endpoints /records.
package records

import "github.com/dropDatabas3/recordsvc/internal/domain/record"

// CreateRequest es el body de POST /records.
type CreateRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
}

// UpdateRequest es el body de PUT /records/{id}.
// Los campos nil no se modifican.
type UpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	LastName *string `json:"lastName,omitempty"`
}

// RecordResponse es un record en la respuesta.
type RecordResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
}

// MessageResponse es la confirmación de operaciones sin payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// FromRecord convierte la entidad a su forma de respuesta.
func FromRecord(r record.Record) RecordResponse {
	return RecordResponse{ID: r.ID(), Name: r.Name(), LastName: r.LastName()}
}

// FromRecords convierte un slice; nunca devuelve nil.
func FromRecords(rs []record.Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRecord(r))
	}
	return out
}

// ResetResponse es la respuesta de POST /admin/records/reset.
type ResetResponse struct {
	Message string `json:"message"`
	Deleted int    `json:"deleted"`
}
