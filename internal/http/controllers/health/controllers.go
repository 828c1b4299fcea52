package health

import (
	dto "github.com/dropDatabas3/recordsvc/internal/http/dto/health"
	svc "github.com/dropDatabas3/recordsvc/internal/http/services/health"
)

// Controllers agrupa los controllers del dominio health.
type Controllers struct {
	Health *HealthController
}

// NewControllers crea el agregador de controllers health.
func NewControllers(s svc.Services, info dto.InfoResponse) *Controllers {
	return &Controllers{
		Health: NewHealthController(s.Health, info),
	}
}
