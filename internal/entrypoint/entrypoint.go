package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mrlokans/nameboard/internal/board"
	"github.com/mrlokans/nameboard/internal/config"
	"github.com/mrlokans/nameboard/internal/demo"
	"github.com/mrlokans/nameboard/internal/exporters"
	http_controllers "github.com/mrlokans/nameboard/internal/http"
	"github.com/mrlokans/nameboard/internal/logging"
	"github.com/mrlokans/nameboard/internal/namesapi"
	"github.com/mrlokans/nameboard/internal/scheduler"
	"github.com/mrlokans/nameboard/internal/security"
	"github.com/mrlokans/nameboard/internal/sessions"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs handler on addr until ctx is done or the process receives
// SIGINT/SIGTERM, then shuts down within timeout.
func Serve(ctx context.Context, handler http.Handler, addr string, timeout time.Duration, logger *slog.Logger, onShutdown ShutdownFunc) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server", "timeout", timeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Callbacks first, so background jobs stop before connections drain.
	if onShutdown != nil {
		onShutdown(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server exiting")
	return nil
}

// NewRegistry returns a Prometheus registry with the Go runtime and process
// collectors already registered.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// NewNamesClient builds the names API client from cfg.
func NewNamesClient(cfg *config.Config, logger *slog.Logger, metrics *namesapi.Metrics) *namesapi.Client {
	return namesapi.NewClient(cfg.NamesAPI.URL,
		namesapi.WithTimeout(cfg.NamesAPI.Timeout),
		namesapi.WithMetrics(metrics),
		namesapi.WithLogger(logger),
	)
}

// NewBoard builds a board controller over the names API. onChange may be nil.
func NewBoard(cfg *config.Config, store board.Store, scrollThreshold int, logger *slog.Logger, onChange func()) *board.Controller {
	return board.NewController(store, board.Config{
		HighlightDuration: cfg.Board.HighlightDuration,
		ScrollThreshold:   scrollThreshold,
		Logger:            logger,
		OnChange:          onChange,
	})
}

func namesAPICheck(client *namesapi.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := client.ListAll(ctx)
		return err
	}
}

// Run starts the web board and blocks until shutdown.
func Run(ctx context.Context, cfg *config.Config, version string) error {
	logger := logging.Setup(cfg.Log.Level)
	logger.Info("starting NameBoard", "version", version)

	registry := NewRegistry()
	client := NewNamesClient(cfg, logger, namesapi.NewMetrics(registry))

	b := NewBoard(cfg, client, cfg.Board.ScrollThreshold, logger, nil)
	defer b.Close()

	if err := b.Resync(ctx); err != nil {
		logger.Warn("initial resync failed, starting with an empty board",
			"url", client.BaseURL(), "error", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resyncer := scheduler.NewResyncScheduler(b, cfg.Board.ResyncSchedule, logger)
	if err := resyncer.Start(ctx); err != nil {
		return err
	}

	sessionManager, err := sessions.NewManager(cfg.Session)
	if err != nil {
		return fmt.Errorf("initialize sessions: %w", err)
	}
	defer func() {
		if err := sessionManager.Close(); err != nil {
			logger.Error("error closing session store", "error", err)
		}
	}()

	csrfSecret, err := security.ParseSecret(cfg.Session.CSRFSecret)
	if err != nil {
		return fmt.Errorf("csrf secret: %w", err)
	}
	if cfg.Session.CSRFSecret == "" {
		logger.Info("generated CSRF secret (set CSRF_SECRET to persist)")
	}

	var demoMiddleware *demo.Middleware
	if cfg.Demo.Enabled {
		logger.Info("demo mode enabled, mutating routes are blocked")
		demoMiddleware = demo.NewMiddleware(true)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Board:         b,
		Sessions:      sessionManager,
		CSRFSecret:    csrfSecret,
		SecureCookies: cfg.Session.SecureCookies,
		TemplatesPath: cfg.UI.TemplatesPath,
		StaticPath:    cfg.UI.StaticPath,
		Exporters: map[string]exporters.BoardExporter{
			"xlsx": exporters.NewXLSXExporter(),
			"md":   exporters.NewMarkdownExporter(),
		},
		DemoMiddleware: demoMiddleware,
		HealthChecks: []http_controllers.HealthCheck{
			{Name: "names_api", Check: namesAPICheck(client)},
		},
		Version:         version,
		Logger:          logger,
		MetricsRegistry: registry,
	})

	onShutdown := func(context.Context) {
		cancel()
		resyncer.Stop()
	}

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	return Serve(ctx, router, addr, timeout, logger, onShutdown)
}
