// Package services es el composition root de los services HTTP.
//
// Cada dominio tiene su sub-paquete con Deps, Services y NewServices:
//
//	svcs := services.New(services.Deps{
//	    Repo:    memory.NewRecordRepository(),
//	    Metrics: m,
//	    Version: version,
//	})
//	// svcs.Records.Records, svcs.Health.Health
package services

import (
	"time"

	"github.com/dropDatabas3/recordsvc/internal/domain/repository"
	"github.com/dropDatabas3/recordsvc/internal/http/services/health"
	"github.com/dropDatabas3/recordsvc/internal/http/services/records"
)

// Deps contiene las dependencias base para crear los services.
type Deps struct {
	// ─── Infraestructura ───
	Repo    repository.RecordRepository // Store de records
	Metrics records.OpRecorder          // Opcional

	// ─── Info ───
	Version   string
	StartedAt time.Time
}

// Services agrupa todos los sub-services por dominio.
type Services struct {
	Records records.Services
	Health  health.Services
}

// New crea todos los services.
func New(d Deps) *Services {
	return &Services{
		Records: records.NewServices(records.Deps{
			Repo:    d.Repo,
			Metrics: d.Metrics,
		}),
		Health: health.NewServices(health.Deps{
			Records:   d.Repo,
			Version:   d.Version,
			StartedAt: d.StartedAt,
		}),
	}
}
