package handlers

import (
	"context"
	"net/http"
	"time"

	"sponsorly_backend/internal/logger"
	"sponsorly_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store *repositories.Store
}

func NewHealthHandler(store *repositories.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health godoc
// @Summary Проверка доступности хранилища
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.CtxWithError(ctx, "health check failed", err, "driver", h.store.Driver)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "driver": h.store.Driver})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "driver": h.store.Driver})
}
