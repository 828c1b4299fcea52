package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/recordsvc/internal/http/controllers/admin"
	mw "github.com/dropDatabas3/recordsvc/internal/http/middlewares"
)

// AdminRouterDeps contiene las dependencias para las rutas admin.
type AdminRouterDeps struct {
	Controllers *ctrl.Controllers
}

// RegisterAdminRoutes registra POST /admin/records/reset.
// Solo se monta cuando la configuración lo habilita explícitamente.
func RegisterAdminRoutes(r chi.Router, deps AdminRouterDeps) {
	c := deps.Controllers

	r.Method(http.MethodPost, "/admin/records/reset", mw.ChainFunc(c.Records.Reset, adminChain()...))
}

// adminChain: middlewares de las rutas admin, del más externo al más interno.
func adminChain() []mw.Middleware {
	return []mw.Middleware{
		mw.WithLogging(),
	}
}
