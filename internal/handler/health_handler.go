package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dealspro/dealspro_api/internal/repository"
	"github.com/dealspro/dealspro_api/internal/storage"
	"github.com/dealspro/dealspro_api/internal/utils"
)

var startTime = time.Now()

// HealthHandler provides health endpoint.
type HealthHandler struct {
	driver string
	kv     storage.KeyValueStore
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(driver string, kv storage.KeyValueStore) *HealthHandler {
	return &HealthHandler{driver: driver, kv: kv}
}

// GetHealth responds with service and storage status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	storageStatus := "connected"
	if _, _, err := h.kv.Get(ctx, repository.KeyDeals); err != nil {
		storageStatus = "disconnected"
	}

	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":  "healthy",
		"version": "1.0.0",
		"uptime":  int(time.Since(startTime).Seconds()),
		"storage": gin.H{
			"driver": h.driver,
			"status": storageStatus,
		},
	})
}
