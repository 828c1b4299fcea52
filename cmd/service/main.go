package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/recordsvc/internal/app"
	"github.com/dropDatabas3/recordsvc/internal/config"
	"github.com/dropDatabas3/recordsvc/internal/http/router"
	"github.com/dropDatabas3/recordsvc/internal/observability/logger"
	"github.com/dropDatabas3/recordsvc/internal/store/memory"
	"github.com/dropDatabas3/recordsvc/internal/store/seed"
	"github.com/dropDatabas3/recordsvc/internal/view"
)

// version se inyecta con -ldflags "-X main.version=..."
var version = "1.0.0"

func fileExists(p string) bool {
	if p == "" {
		return false
	}
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}

func main() {
	var (
		flagConfigPath = flag.String("config", "", "ruta a config.yaml (fallback: $CONFIG_PATH o configs/config.yaml si existe)")
		flagEnvFile    = flag.String("env-file", ".env", "ruta a .env (si existe, se carga)")
		flagPrint      = flag.Bool("print-config", false, "imprime config efectiva y termina")
		flagNoBanner   = flag.Bool("no-banner", false, "no mostrar el banner de arranque")
	)
	flag.Parse()

	if fileExists(*flagEnvFile) {
		if err := godotenv.Load(*flagEnvFile); err != nil {
			log.Fatalf("dotenv: %v", err)
		}
	}

	cfgPath := *flagConfigPath
	if cfgPath == "" {
		cfgPath = os.Getenv("CONFIG_PATH")
	}
	if cfgPath == "" && fileExists("configs/config.yaml") {
		cfgPath = "configs/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *flagPrint {
		raw, err := cfg.YAML()
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		fmt.Print(string(raw))
		return
	}

	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, ServiceName: "recordsvc", Version: version})
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, !*flagNoBanner); err != nil {
		logger.L().Fatal("server failed", logger.Err(err))
	}
}

func run(cfg *config.Config, banner bool) error {
	log := logger.With(logger.Component("main"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := memory.NewRecordRepository()
	if p := strings.TrimSpace(cfg.Seed.File); p != "" {
		n, err := seed.LoadFile(ctx, p, repo)
		if err != nil {
			return err
		}
		log.Info("seed applied", logger.String("file", p), logger.Count(n))
	}

	a, err := app.New(cfg, app.Deps{Repo: repo, Version: version})
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           a.Handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	if banner {
		view.NewConsole(os.Stdout).ServerStart(view.Banner{
			Title:     app.ServiceName + " v" + version,
			Addr:      ln.Addr().String(),
			BaseURL:   baseURL(ln.Addr(), cfg.Server.BasePath),
			Endpoints: a.Info.Endpoints,
		})
	}

	log.Info("listening", logger.String("addr", ln.Addr().String()), logger.String("env", cfg.App.Env))
	if err := serve(ctx, srv, ln, cfg.Server.ShutdownTimeout); err != nil {
		return err
	}
	log.Info("server stopped", logger.Count(repo.Count(context.Background())))
	return nil
}

// serve atiende en ln hasta que ctx se cancela y luego drena las requests en
// vuelo con Shutdown. Las requests no heredan ctx: la señal no las cancela.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.With(logger.Component("main")).Info("shutting down", logger.Duration(shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// baseURL arma la URL pública para el banner (localhost si escucha en todas las interfaces).
func baseURL(addr net.Addr, basePath string) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String() + router.NormalizeBasePath(basePath)
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + router.NormalizeBasePath(basePath)
}
