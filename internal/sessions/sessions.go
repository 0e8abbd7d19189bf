// Package sessions keeps per-browser state for the web UI. The board itself
// is shared; the session only carries one-shot notices between a redirect
// and the page that follows it.
package sessions

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mrlokans/nameboard/internal/config"
)

const sessionKeyNotice = "notice"

// Manager wraps scs.SessionManager with the flash helpers the UI needs.
type Manager struct {
	*scs.SessionManager
	db *sql.DB
}

// NewManager creates a session manager. Sessions live in memory unless
// cfg.DBPath points at a SQLite file.
func NewManager(cfg config.Session) (*Manager, error) {
	sm := scs.New()
	m := &Manager{SessionManager: sm}

	if cfg.DBPath != "" {
		db, err := sql.Open("sqlite3", cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open session database: %w", err)
		}

		_, err = db.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("create sessions table: %w", err)
		}

		sm.Store = sqlite3store.New(db)
		m.db = db
	}

	if cfg.Lifetime > 0 {
		sm.Lifetime = cfg.Lifetime
	}
	sm.Cookie.Name = "nameboard_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"

	return m, nil
}

// Close releases the session database, if any.
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}

// PutNotice stores a message for the next page render.
func (m *Manager) PutNotice(ctx context.Context, message string) {
	m.Put(ctx, sessionKeyNotice, message)
}

// PopNotice returns and forgets the pending message, or "".
func (m *Manager) PopNotice(ctx context.Context) string {
	return m.PopString(ctx, sessionKeyNotice)
}
