package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/nameboard/internal/demo"
)

// DemoController reports which board intents the current mode allows.
type DemoController struct {
	policy *demo.Middleware
}

func NewDemoController(policy *demo.Middleware) *DemoController {
	if policy == nil {
		policy = demo.NewMiddleware(false)
	}
	return &DemoController{policy: policy}
}

// DemoStatusResponse lists the board intents by availability.
type DemoStatusResponse struct {
	Enabled bool     `json:"enabled"`
	Allowed []string `json:"allowed"`
	Blocked []string `json:"blocked"`
	Message string   `json:"message"`
}

// GET /api/demo/status
func (dc *DemoController) GetStatus(c *gin.Context) {
	resp := DemoStatusResponse{
		Enabled: dc.policy.IsEnabled(),
		Allowed: dc.policy.AllowedIntents(),
		Blocked: dc.policy.BlockedIntents(),
	}
	if len(resp.Blocked) == 0 {
		resp.Message = "All board actions are available"
	} else {
		resp.Message = "Demo mode: " + strings.Join(resp.Blocked, ", ") + " are disabled"
	}
	c.JSON(http.StatusOK, resp)
}
