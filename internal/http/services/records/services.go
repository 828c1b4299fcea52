// Package records contiene los services del dominio records.
package records

import "github.com/dropDatabas3/recordsvc/internal/domain/repository"

// Deps contiene las dependencias para crear los services de records.
type Deps struct {
	Repo    repository.RecordRepository
	Metrics OpRecorder
}

// Services agrupa todos los services del dominio records.
type Services struct {
	Records RecordService
}

// NewServices crea el agregador de services de records.
func NewServices(d Deps) Services {
	return Services{
		Records: NewRecordService(d.Repo, d.Metrics),
	}
}
