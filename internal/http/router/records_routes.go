package router

import (
	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/recordsvc/internal/http/controllers/records"
	mw "github.com/dropDatabas3/recordsvc/internal/http/middlewares"
)

// RecordRouterDeps contiene las dependencias para las rutas de records.
type RecordRouterDeps struct {
	Controllers *ctrl.Controllers
}

// RegisterRecordRoutes registra el CRUD bajo /records.
func RegisterRecordRoutes(r chi.Router, deps RecordRouterDeps) {
	c := deps.Controllers.Records

	r.Route("/records", func(r chi.Router) {
		r.Use(mw.WithLogging())

		r.Get("/", c.List)
		r.Post("/", c.Create)
		r.Get("/search", c.Search)
		r.Get("/{"+ctrl.ParamID+"}", c.Get)
		r.Put("/{"+ctrl.ParamID+"}", c.Update)
		r.Delete("/{"+ctrl.ParamID+"}", c.Delete)
	})
}
