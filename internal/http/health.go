package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/nameboard/internal/database"
)

const healthCheckTimeout = 3 * time.Second

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// HealthCheck is one named dependency probe.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthController struct {
	checks  []HealthCheck
	version string
}

func NewHealthController(version string, checks ...HealthCheck) *HealthController {
	return &HealthController{
		checks:  checks,
		version: version,
	}
}

// GET /health
func (h *HealthController) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string, len(h.checks))
	status := "healthy"

	for _, check := range h.checks {
		if check.Check == nil {
			checks[check.Name] = "not configured"
			continue
		}
		if err := check.Check(ctx); err != nil {
			checks[check.Name] = "error: " + err.Error()
			status = "unhealthy"
			continue
		}
		checks[check.Name] = "ok"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

// GET /ping
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

func databaseCheck(db *database.Database) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return db.Ping()
	}
}
