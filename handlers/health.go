package handlers

import (
	"net/http"

	"concierge/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency check.
type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

func NewHealthHandler(m *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: m}
}

// Health handles GET /health. Before the first scheduled run it checks inline.
func (h *HealthHandler) Health(c *gin.Context) {
	st := h.Monitor.Status()
	if st.CheckedAt.IsZero() {
		st = h.Monitor.Check(c.Request.Context())
	}
	code := http.StatusOK
	if !st.OK {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, st)
}
