package demo

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

// Intent is one board action reachable over a non-GET route.
type Intent struct {
	Name    string
	Pattern string
	// Navigation intents only touch interaction state and never reach the
	// names API with a mutation.
	Navigation bool
}

// Intents lists the board's non-GET routes in display order.
var Intents = []Intent{
	{Name: "create", Pattern: "/ui/names"},
	{Name: "edit", Pattern: "/ui/names/*/edit", Navigation: true},
	{Name: "cancel_edit", Pattern: "/ui/names/*/edit/cancel", Navigation: true},
	{Name: "save", Pattern: "/ui/names/*/save"},
	{Name: "like", Pattern: "/ui/names/*/like"},
	{Name: "delete", Pattern: "/ui/names/*/delete"},
	{Name: "random", Pattern: "/ui/random", Navigation: true},
	{Name: "scroll", Pattern: "/ui/scroll", Navigation: true},
	{Name: "resync", Pattern: "/ui/resync", Navigation: true},
}

// Middleware blocks mutating requests in demo mode. GET requests and the
// navigation intents stay available.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a demo mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether demo mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// AllowedIntents names the intents that work in the current mode.
func (m *Middleware) AllowedIntents() []string {
	return m.intents(func(i Intent) bool { return !m.enabled || i.Navigation })
}

// BlockedIntents names the intents demo mode turns away.
func (m *Middleware) BlockedIntents() []string {
	return m.intents(func(i Intent) bool { return m.enabled && !i.Navigation })
}

func (m *Middleware) intents(keep func(Intent) bool) []string {
	out := []string{}
	for _, i := range Intents {
		if keep(i) {
			out = append(out, i.Name)
		}
	}
	return out
}

// Handler returns a Gin middleware that blocks mutating requests.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if isAllowedPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		m.respondBlocked(c)
	}
}

func isAllowedPath(p string) bool {
	p = path.Clean(p)
	for _, i := range Intents {
		if !i.Navigation {
			continue
		}
		if ok, _ := path.Match(i.Pattern, p); ok {
			return true
		}
	}
	return false
}

// respondBlocked sends a 403 for HTMX, JSON and plain form clients alike.
func (m *Middleware) respondBlocked(c *gin.Context) {
	message := "This action is disabled in demo mode"

	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Reswap", "none")
		c.Header("HX-Trigger", `{"showNotice": {"message": "`+message+`"}}`)
		c.String(http.StatusForbidden, message)
		c.Abort()
		return
	}

	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     message,
			"demo_mode": true,
		})
		c.Abort()
		return
	}

	c.String(http.StatusForbidden, message)
	c.Abort()
}

// ContextKeyDemoMode is the gin context key templates read the flag from.
const ContextKeyDemoMode = "demo_mode"

// InjectContext adds the demo mode flag to the context for template rendering.
func (m *Middleware) InjectContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyDemoMode, m.enabled)
		c.Next()
	}
}
