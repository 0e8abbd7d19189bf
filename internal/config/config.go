package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		NamesAPI
		Board
		UI
		Session
		Demo
		API
		Database
		Log
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	NamesAPI struct {
		URL     string        // Base URL of the names collection
		Timeout time.Duration // Per-request timeout
	}
	Board struct {
		HighlightDuration time.Duration // How long a random pick stays highlighted
		ScrollThreshold   int           // Scroll offset past which "back to top" shows
		TUIScrollLines    int           // Same threshold for the terminal client, in lines
		ResyncSchedule    string        // Cron format, empty disables periodic resync
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	Session struct {
		DBPath        string        // SQLite file for sessions, empty keeps them in memory
		Lifetime      time.Duration // Session cookie lifetime
		CSRFSecret    string        // Hex or raw secret, generated if empty
		SecureCookies bool          // Set to false for local dev without HTTPS
	}
	Demo struct {
		Enabled bool // Block every mutating route
	}
	API struct {
		Port     int32
		Host     string
		AuditDir string // One JSON file per accepted write, empty disables
	}
	Database struct {
		Path string
	}
	Log struct {
		Level string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	v.SetDefault("names_api_url", DefaultNamesAPIURL)
	v.SetDefault("names_api_timeout", "10s")

	v.SetDefault("highlight_duration", "3s")
	v.SetDefault("scroll_threshold", 200)
	v.SetDefault("tui_scroll_lines", 10)
	v.SetDefault("resync_schedule", "") // e.g. "*/5 * * * *"

	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")

	// Session defaults
	v.SetDefault("session_db_path", "")
	v.SetDefault("session_lifetime", "24h")
	v.SetDefault("csrf_secret", "") // Auto-generated if empty
	v.SetDefault("secure_cookies", false)

	v.SetDefault("demo_mode", false)

	// Reference API server defaults
	v.SetDefault("api_port", 5000)
	v.SetDefault("api_host", "0.0.0.0")
	v.SetDefault("audit_dir", "")
	v.SetDefault("database_path", DefaultDatabasePath)

	v.SetDefault("log_level", "info")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		NamesAPI: NamesAPI{
			URL:     v.GetString("NAMES_API_URL"),
			Timeout: v.GetDuration("NAMES_API_TIMEOUT"),
		},
		Board: Board{
			HighlightDuration: v.GetDuration("HIGHLIGHT_DURATION"),
			ScrollThreshold:   v.GetInt("SCROLL_THRESHOLD"),
			TUIScrollLines:    v.GetInt("TUI_SCROLL_LINES"),
			ResyncSchedule:    v.GetString("RESYNC_SCHEDULE"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Session: Session{
			DBPath:        v.GetString("SESSION_DB_PATH"),
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			CSRFSecret:    v.GetString("CSRF_SECRET"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
		},
		Demo: Demo{
			Enabled: v.GetBool("DEMO_MODE"),
		},
		API: API{
			Port:     v.GetInt32("API_PORT"),
			Host:     v.GetString("API_HOST"),
			AuditDir: v.GetString("AUDIT_DIR"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Log: Log{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
}
