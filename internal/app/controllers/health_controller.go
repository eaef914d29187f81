package controllers

import (
	"github.com/gin-gonic/gin"

	"propertyops-http-service/internal/domain/services"
	"propertyops-http-service/internal/domain/services/container"
	"propertyops-http-service/internal/error/code"
	"propertyops-http-service/internal/error/response"
	"propertyops-http-service/internal/infrastructure/database"
	Logger "propertyops-http-service/pkg/logger"
)

// HealthCheckController answers liveness and readiness probes
type HealthCheckController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthCheckController creates a health check controller
func NewHealthCheckController(ctx *gin.Context, container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{
		Ctx:       ctx,
		Container: container,
	}
}

// 1. Ping is the liveness endpoint
// @Summary      Ping
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func (h *HealthCheckController) Ping() {
	response.Success(h.Ctx, gin.H{
		"status":  "ok",
		"message": "pong",
	})
}

// 2. Health pings the database and reports pool usage
// @Summary      Health
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  response.ErrorResponse
// @Router       /health [get]
func (h *HealthCheckController) Health() {
	pool := h.Container.GetService("pool").(*database.ConnectionPool)
	ctx := h.Ctx.Request.Context()

	if err := pool.HealthCheck(ctx); err != nil {
		Logger.Error("database health check failed: %v", err)
		response.Fail(h.Ctx, code.ErrDatabaseUnavailable, gin.H{"database": err.Error()})
		return
	}

	stats, err := pool.Stats()
	if err != nil {
		Logger.Warning("read pool stats: %v", err)
	}

	redisStatus := "disabled"
	if redisService, ok := h.Container.GetService("redis").(services.InterfaceRedisService); ok {
		redisStatus = "up"
		if err := redisService.Ping(ctx); err != nil {
			redisStatus = "down"
		}
	}

	response.Success(h.Ctx, gin.H{
		"status":   "healthy",
		"database": "up",
		"pool":     stats,
		"redis":    redisStatus,
	})
}

// HandleHealthFunc returns a gin.HandlerFunc for the specified method
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthCheckController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "health":
			controller.Health()
		default:
			invalidMethod(ctx, method)
		}
	}
}
