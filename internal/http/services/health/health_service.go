// Package health contiene el service para health checks.
package health

import (
	"context"
	"fmt"
	"time"

	dto "github.com/dropDatabas3/recordsvc/internal/http/dto/health"
	"github.com/dropDatabas3/recordsvc/internal/observability/logger"
)

// HealthService define las operaciones de health check.
type HealthService interface {
	Check(ctx context.Context) dto.HealthResponse
}

// RecordCounter abstrae el conteo de records para el reporte.
type RecordCounter interface {
	Count(ctx context.Context) int
}

// Deps contiene las dependencias inyectables para el health service.
type Deps struct {
	Records   RecordCounter
	Version   string
	StartedAt time.Time
	// Now permite fijar el reloj en tests. Default: time.Now.
	Now func() time.Time
}

// Services agrupa todos los services del dominio health.
type Services struct {
	Health HealthService
}

// NewServices crea el agregador de services health.
func NewServices(d Deps) Services {
	return Services{
		Health: NewHealthService(d),
	}
}

type healthService struct {
	deps Deps
}

// NewHealthService crea un nuevo service de health check.
func NewHealthService(deps Deps) HealthService {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.StartedAt.IsZero() {
		deps.StartedAt = deps.Now()
	}
	return &healthService{deps: deps}
}

const componentHealth = "health"

func (s *healthService) Check(ctx context.Context) dto.HealthResponse {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentHealth),
		logger.Op("Check"),
	)

	now := s.deps.Now()
	response := dto.HealthResponse{
		Status:     "ready",
		Components: make(map[string]dto.HealthStatus),
		Version:    s.deps.Version,
		Uptime:     now.Sub(s.deps.StartedAt).Truncate(time.Second).String(),
		Timestamp:  now.UTC(),
	}

	if s.deps.Records == nil {
		response.Status = "unavailable"
		response.Components["store"] = dto.HealthStatus{Status: "error", Message: "record store not wired"}
	} else {
		response.Records = s.deps.Records.Count(ctx)
		response.Components["store"] = dto.HealthStatus{Status: "ok", Message: fmt.Sprintf("memory (%d records)", response.Records)}
	}

	log.Debug("health computed", logger.String("status", response.Status))
	return response
}
