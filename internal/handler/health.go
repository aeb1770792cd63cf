package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/inkpost/backend/internal/db"
	"github.com/inkpost/backend/internal/model"
)

type HealthHandler struct {
	repo *db.Postgres
}

func NewHealthHandler(repo *db.Postgres) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Check godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} model.APIResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	writeEnvelope(c, model.NewSuccess(gin.H{
		"status":  "ok",
		"message": "service is running",
	}))
}

// CheckDetailed godoc
// @Summary Readiness check including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /health/detailed [get]
func (h *HealthHandler) CheckDetailed(c *gin.Context) {
	if err := h.repo.Ping(c.Request.Context()); err != nil {
		writeEnvelope(c, model.NewError(500, "database operation failed"))
		return
	}

	writeEnvelope(c, model.NewSuccess(gin.H{
		"status":   "ok",
		"database": "connected",
	}))
}
