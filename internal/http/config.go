package http

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mrlokans/nameboard/internal/database"
	"github.com/mrlokans/nameboard/internal/demo"
	"github.com/mrlokans/nameboard/internal/exporters"
	"github.com/mrlokans/nameboard/internal/sessions"
)

// RouterConfig contains all dependencies and configuration needed
// to create the board UI router.
type RouterConfig struct {
	// Core dependencies
	Board Board

	// Per-browser notices; nil disables flash messages
	Sessions *sessions.Manager

	// CSRF protection, disabled when the secret is empty
	CSRFSecret    []byte
	SecureCookies bool

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Export formats served under /ui/export.<ext>, keyed by extension
	Exporters map[string]exporters.BoardExporter

	DemoMiddleware *demo.Middleware

	// Health probes reported by /health
	HealthChecks []HealthCheck

	// Application info
	Version string

	Logger *slog.Logger

	// Metrics registry served on /metrics; nil disables metrics
	MetricsRegistry *prometheus.Registry
}

// APIRouterConfig contains the dependencies of the reference names API.
type APIRouterConfig struct {
	Store    NameStore
	Database *database.Database

	// Trail of accepted writes; nil disables it
	Auditor MutationRecorder

	DemoMiddleware *demo.Middleware

	Version string

	Logger *slog.Logger

	MetricsRegistry *prometheus.Registry
}
