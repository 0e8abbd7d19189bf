package entrypoint

import (
	"context"
	"fmt"
	"time"

	"github.com/mrlokans/nameboard/internal/audit"
	"github.com/mrlokans/nameboard/internal/config"
	"github.com/mrlokans/nameboard/internal/database"
	"github.com/mrlokans/nameboard/internal/database/names"
	"github.com/mrlokans/nameboard/internal/demo"
	http_controllers "github.com/mrlokans/nameboard/internal/http"
	"github.com/mrlokans/nameboard/internal/logging"
)

// RunAPI starts the reference names API backed by SQLite. With seed set (or
// in demo mode) an empty database is filled with the sample names first.
func RunAPI(ctx context.Context, cfg *config.Config, version string, seed bool) error {
	logger := logging.Setup(cfg.Log.Level)
	logger.Info("starting names API", "version", version, "database", cfg.Database.Path)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing database", "error", err)
		}
	}()

	repo := names.NewRepository(db.DB)

	var demoMiddleware *demo.Middleware
	if cfg.Demo.Enabled {
		logger.Info("demo mode enabled, the names API is read-only")
		demoMiddleware = demo.NewMiddleware(true)
		seed = true
	}

	if seed {
		created, err := demo.Seed(repo)
		if err != nil {
			return fmt.Errorf("seed sample names: %w", err)
		}
		if created > 0 {
			logger.Info("seeded sample names", "count", created)
		}
	}

	var auditor http_controllers.MutationRecorder
	if cfg.API.AuditDir != "" {
		logger.Info("recording accepted writes", "dir", cfg.API.AuditDir)
		auditor = audit.NewAuditor(cfg.API.AuditDir)
	}

	router := http_controllers.NewAPIRouter(http_controllers.APIRouterConfig{
		Store:           repo,
		Database:        db,
		Auditor:         auditor,
		DemoMiddleware:  demoMiddleware,
		Version:         version,
		Logger:          logger,
		MetricsRegistry: NewRegistry(),
	})

	addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	return Serve(ctx, router, addr, timeout, logger, nil)
}
