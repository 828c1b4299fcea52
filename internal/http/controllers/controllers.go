// Package controllers es el composition root de los controllers HTTP.
//
// Cada dominio vive en su sub-paquete con un aggregator propio
// (controllers/{dominio}/controllers.go); este archivo los reúne:
//
//	svcs := services.New(deps)
//	ctrls := controllers.New(svcs, info)
//	handler := router.New(router.Deps{Controllers: ctrls, ...})
package controllers

import (
	"github.com/dropDatabas3/recordsvc/internal/http/controllers/admin"
	"github.com/dropDatabas3/recordsvc/internal/http/controllers/health"
	"github.com/dropDatabas3/recordsvc/internal/http/controllers/records"
	dto "github.com/dropDatabas3/recordsvc/internal/http/dto/health"
	"github.com/dropDatabas3/recordsvc/internal/http/services"
)

// Controllers agrupa todos los controllers del servicio.
type Controllers struct {
	Records *records.Controllers
	Health  *health.Controllers
	Admin   *admin.Controllers
}

// New crea todos los controllers inyectando los services.
func New(s *services.Services, info dto.InfoResponse) *Controllers {
	return &Controllers{
		Records: records.NewControllers(s.Records),
		Health:  health.NewControllers(s.Health, info),
		Admin:   admin.NewControllers(s.Records),
	}
}
