package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/lvyanru/startupradar/internal/domain"
)

// HealthHandler health check handler
type HealthHandler struct {
	repo domain.DatasetRepository
}

// NewHealthHandler creates a health check handler
func NewHealthHandler(repo domain.DatasetRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Ping basic health check
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{
		"status":  "ok",
		"message": "pong",
	})
}

// Readiness reports ready once a dataset is cached. The probe never
// triggers a load itself.
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	if !h.repo.Loaded() {
		c.JSON(consts.StatusServiceUnavailable, utils.H{
			"status":  "not_ready",
			"dataset": "not_loaded",
		})
		return
	}

	c.JSON(consts.StatusOK, utils.H{
		"status":  "ready",
		"dataset": "loaded",
	})
}

// Liveness liveness check
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{
		"status": "alive",
	})
}
