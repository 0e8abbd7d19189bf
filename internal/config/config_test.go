package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8190), cfg.HTTP.Port)
	assert.Equal(t, DefaultNamesAPIURL, cfg.NamesAPI.URL)
	assert.Equal(t, 10*time.Second, cfg.NamesAPI.Timeout)
	assert.Equal(t, 3*time.Second, cfg.Board.HighlightDuration)
	assert.Equal(t, 200, cfg.Board.ScrollThreshold)
	assert.Equal(t, 10, cfg.Board.TUIScrollLines)
	assert.Empty(t, cfg.Board.ResyncSchedule)
	assert.False(t, cfg.Demo.Enabled)
	assert.Equal(t, int32(5000), cfg.API.Port)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Empty(t, cfg.API.AuditDir)
}

func TestNewConfig_Environment(t *testing.T) {
	t.Setenv("NAMES_API_URL", "http://names.internal/names")
	t.Setenv("HIGHLIGHT_DURATION", "5s")
	t.Setenv("SCROLL_THRESHOLD", "350")
	t.Setenv("DEMO_MODE", "true")
	t.Setenv("RESYNC_SCHEDULE", "*/5 * * * *")

	cfg := NewConfig()

	assert.Equal(t, "http://names.internal/names", cfg.NamesAPI.URL)
	assert.Equal(t, 5*time.Second, cfg.Board.HighlightDuration)
	assert.Equal(t, 350, cfg.Board.ScrollThreshold)
	assert.True(t, cfg.Demo.Enabled)
	assert.Equal(t, "*/5 * * * *", cfg.Board.ResyncSchedule)
}
