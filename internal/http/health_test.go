package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/nameboard/internal/database"
)

func setupHealthTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_health_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func getHealth(t *testing.T, controller *HealthController) (int, HealthResponse) {
	t.Helper()

	router := gin.New()
	router.GET("/health", controller.Status)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w.Code, response
}

func TestHealthController_Status(t *testing.T) {
	t.Run("returns healthy when database is connected", func(t *testing.T) {
		db, cleanup := setupHealthTestDB(t)
		defer cleanup()

		code, response := getHealth(t, NewHealthController("1.0.0",
			HealthCheck{Name: "database", Check: databaseCheck(db)}))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.NotEmpty(t, response.Time)
	})

	t.Run("returns unhealthy when database is closed", func(t *testing.T) {
		db, cleanup := setupHealthTestDB(t)
		defer cleanup()
		require.NoError(t, db.Close())

		code, response := getHealth(t, NewHealthController("1.0.0",
			HealthCheck{Name: "database", Check: databaseCheck(db)}))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "unhealthy", response.Status)
		assert.True(t, strings.HasPrefix(response.Checks["database"], "error: "))
	})

	t.Run("reports a failing names API", func(t *testing.T) {
		code, response := getHealth(t, NewHealthController("",
			HealthCheck{Name: "names_api", Check: func(ctx context.Context) error {
				return errors.New("connection refused")
			}}))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "error: connection refused", response.Checks["names_api"])
	})

	t.Run("unset check is not configured", func(t *testing.T) {
		code, response := getHealth(t, NewHealthController("", HealthCheck{Name: "names_api"}))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "not configured", response.Checks["names_api"])
	})
}
