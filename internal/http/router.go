package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mrlokans/nameboard/internal/board"
	"github.com/mrlokans/nameboard/internal/security"
)

// NewRouter creates the board UI router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(cfg.Logger))
	router.Use(gin.Recovery())

	if cfg.MetricsRegistry != nil {
		router.Use(NewHTTPMetrics(cfg.MetricsRegistry).Handler())
	}

	// Apply security headers to all responses
	router.Use(security.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(security.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	var notices NoticeStore
	if cfg.Sessions != nil {
		router.Use(cfg.Sessions.LoadSave())
		notices = cfg.Sessions
	}

	if cfg.DemoMiddleware != nil && cfg.DemoMiddleware.IsEnabled() {
		router.Use(cfg.DemoMiddleware.InjectContext())
		router.Use(cfg.DemoMiddleware.Handler())
	}

	funcMap := template.FuncMap{
		"letterAnchor": board.LetterAnchor,
		"nameAnchor":   board.NameAnchor,
	}

	tmpl := template.Must(template.New("").Funcs(funcMap).ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	health := NewHealthController(cfg.Version, cfg.HealthChecks...)
	boardController := NewBoardController(cfg.Board, notices)
	demoController := NewDemoController(cfg.DemoMiddleware)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", ping)
	if cfg.MetricsRegistry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.MetricsRegistry, promhttp.HandlerOpts{})))
	}

	// Board page and fragments
	router.GET("/", boardController.BoardPage)
	router.GET("/ui/board", boardController.BoardFragment)
	router.GET("/api/board", boardController.BoardJSON)

	// Mutations
	router.POST("/ui/names", boardController.CreateName)
	router.POST("/ui/names/:id/save", boardController.SaveEdit)
	router.POST("/ui/names/:id/like", boardController.ToggleLike)
	router.POST("/ui/names/:id/delete", boardController.DeleteName)

	// Navigation and interaction state
	router.POST("/ui/names/:id/edit", boardController.StartEdit)
	router.POST("/ui/names/:id/edit/cancel", boardController.CancelEdit)
	router.POST("/ui/random", boardController.Random)
	router.GET("/ui/jump/:letter", boardController.Jump)
	router.POST("/ui/scroll", boardController.Scroll)
	router.POST("/ui/resync", boardController.Resync)

	for ext, exporter := range cfg.Exporters {
		router.GET("/ui/export."+ext, NewExportController(cfg.Board, exporter).Download)
	}

	router.GET("/api/demo/status", demoController.GetStatus)

	return router
}

// NewAPIRouter creates the reference names REST API router.
func NewAPIRouter(cfg APIRouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(cfg.Logger))
	router.Use(gin.Recovery())

	if cfg.MetricsRegistry != nil {
		router.Use(NewHTTPMetrics(cfg.MetricsRegistry).Handler())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.MetricsRegistry, promhttp.HandlerOpts{})))
	}

	if cfg.DemoMiddleware != nil && cfg.DemoMiddleware.IsEnabled() {
		router.Use(cfg.DemoMiddleware.Handler())
	}

	var checks []HealthCheck
	if cfg.Database != nil {
		checks = append(checks, HealthCheck{Name: "database", Check: databaseCheck(cfg.Database)})
	}
	health := NewHealthController(cfg.Version, checks...)
	namesController := NewNamesAPIController(cfg.Store, cfg.Auditor)

	router.GET("/health", health.Status)
	router.GET("/ping", ping)

	router.GET("/names", namesController.ListNames)
	router.POST("/names", namesController.CreateName)
	router.GET("/names/:id", namesController.GetName)
	router.PUT("/names/:id", namesController.UpdateName)
	router.DELETE("/names/:id", namesController.DeleteName)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "route not found"})
	})

	return router
}
