package api

import (
	"net/http"

	"purchase-pipeline/internal/pkg/lifecycle"

	"github.com/gin-gonic/gin"
)

type StatusReader interface {
	Status() lifecycle.Status
}

type HealthHandler struct {
	status StatusReader
}

func NewHealthHandler(status StatusReader) *HealthHandler {
	return &HealthHandler{status: status}
}

// @Summary Liveness
// @Description Always 200 while the process serves HTTP
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Consumer health
// @Description Liveness plus per-dependency readiness; status is "degraded" unless every dependency is up
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) ConsumerHealth(c *gin.Context) {
	st := h.status.Status()
	status := "ok"
	if !st.Ready() {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      status,
		"streamReady": st.DependencyReady(lifecycle.DependencyStream),
		"storeReady":  st.DependencyReady(lifecycle.DependencyStore),
	})
}

// @Summary Readiness
// @Description 200 once every dependency is connected, 503 with a machine readable reason otherwise
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	st := h.status.Status()
	if !st.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "reason": st.Reason})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
