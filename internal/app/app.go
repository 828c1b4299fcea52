// Package app cablea repositorio, services, controllers y router en un
// único http.Handler listo para servir.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/dropDatabas3/recordsvc/internal/config"
	"github.com/dropDatabas3/recordsvc/internal/domain/repository"
	"github.com/dropDatabas3/recordsvc/internal/http/controllers"
	healthdto "github.com/dropDatabas3/recordsvc/internal/http/dto/health"
	"github.com/dropDatabas3/recordsvc/internal/http/router"
	"github.com/dropDatabas3/recordsvc/internal/http/services"
	"github.com/dropDatabas3/recordsvc/internal/metrics"
	"github.com/dropDatabas3/recordsvc/internal/observability/logger"
	"github.com/dropDatabas3/recordsvc/internal/store/memory"
)

// ServiceName se publica en GET / y en el banner.
const ServiceName = "Records API"

// Deps contiene las dependencias crudas. Los campos nil se crean con defaults.
type Deps struct {
	Repo    repository.RecordRepository
	Version string
	Now     func() time.Time
}

// App representa la aplicación cableada.
type App struct {
	Handler http.Handler
	Repo    repository.RecordRepository
	Metrics *metrics.Metrics
	Info    healthdto.InfoResponse
}

// New construye la App a partir de la configuración.
func New(cfg *config.Config, deps Deps) (*App, error) {
	if deps.Repo == nil {
		deps.Repo = memory.NewRecordRepository()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	repo := deps.Repo

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		var err error
		m, err = metrics.New(metrics.Config{
			RecordCount:  func() int { return repo.Count(context.Background()) },
			GoCollectors: true,
		})
		if err != nil {
			return nil, err
		}
	}

	svcDeps := services.Deps{
		Repo:      repo,
		Version:   deps.Version,
		StartedAt: deps.Now(),
	}
	// Evita un OpRecorder no-nil con puntero nil.
	if m != nil {
		svcDeps.Metrics = m
	}
	svcs := services.New(svcDeps)

	info := healthdto.InfoResponse{
		Message:   ServiceName,
		Version:   deps.Version,
		Endpoints: router.Endpoints(cfg.Server.BasePath, cfg.Admin.ResetEnabled),
	}
	ctrls := controllers.New(svcs, info)

	handler := router.New(router.Deps{
		Controllers: ctrls,
		BasePath:    cfg.Server.BasePath,
		CORSOrigins: cfg.Server.CORSAllowedOrigins,
		Metrics:     m,
		MetricsPath: cfg.Metrics.Path,
		AdminReset:  cfg.Admin.ResetEnabled,
	})

	logger.L().Debug("app wired",
		logger.Component("app"),
		logger.String("base_path", router.NormalizeBasePath(cfg.Server.BasePath)),
		logger.Bool("metrics", m != nil),
		logger.Bool("admin_reset", cfg.Admin.ResetEnabled),
	)

	return &App{
		Handler: handler,
		Repo:    repo,
		Metrics: m,
		Info:    info,
	}, nil
}
