package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler exposes service health endpoints
type SystemHandler struct {
	BaseHandler
	appName string
	version string
	started time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(appName, version string) *SystemHandler {
	return &SystemHandler{
		appName: appName,
		version: version,
		started: time.Now(),
	}
}

// Health reports liveness
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status":  "ok",
		"app":     h.appName,
		"version": h.version,
		"uptime":  time.Since(h.started).String(),
	})
}
