package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pourtrait/pourtrait-api/internal/config"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewHealthHandler(db *gorm.DB, cfg *config.Config) *HealthHandler {
	return &HealthHandler{db: db, cfg: cfg}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "connected"
	if h.db == nil {
		dbStatus = "not configured"
	} else if sqlDB, err := h.db.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
	}

	remoteStatus := "disabled"
	if h.cfg.RemoteEnabled() {
		remoteStatus = "enabled"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"database":        dbStatus,
		"remote_override": remoteStatus,
	})
}
