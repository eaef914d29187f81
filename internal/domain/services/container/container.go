package container

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"propertyops-http-service/internal/domain/services"
	"propertyops-http-service/internal/infrastructure/config"
	"propertyops-http-service/internal/infrastructure/database"
	"propertyops-http-service/internal/infrastructure/metrics"
	Logger "propertyops-http-service/pkg/logger"
)

// ServiceContainer wires the services to their shared dependencies
type ServiceContainer struct {
	pool    *database.ConnectionPool
	config  *config.Config
	metrics *metrics.Metrics

	redisService services.InterfaceRedisService

	tenantService             services.InterfaceTenantService
	unitService               services.InterfaceUnitService
	maintenanceRequestService services.InterfaceMaintenanceRequestService
	paymentService            services.InterfacePaymentService
	seedService               services.InterfaceSeedService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(pool *database.ConnectionPool, cfg *config.Config, m *metrics.Metrics) *ServiceContainer {
	if pool == nil || pool.DB == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		pool:    pool,
		config:  cfg,
		metrics: m,
	}
	container.initializeServices()
	return container
}

// initializeServices builds every service
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	db := c.pool.DB

	if c.config.RedisEnabled {
		redisService := services.NewRedisService(c.config)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisService.Ping(ctx); err != nil {
			Logger.Warning("redis ping failed: %v, falling back to in-memory rate limiting", err)
			_ = redisService.Close()
		} else {
			c.redisService = redisService
		}
	}

	c.tenantService = services.NewTenantService(db, c.config, c.metrics)
	c.unitService = services.NewUnitService(db, c.config, c.metrics)
	c.maintenanceRequestService = services.NewMaintenanceRequestService(db, c.config, c.metrics)
	c.paymentService = services.NewPaymentService(db, c.config, c.metrics)
	c.seedService = services.NewSeedService(db, c.config)
}

// GetService returns the service registered under name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.pool.DB
	case "pool":
		return c.pool
	case "metrics":
		return c.metrics
	case "redis":
		return c.redisService
	case "tenant":
		return c.tenantService
	case "unit":
		return c.unitService
	case "maintenance_request":
		return c.maintenanceRequestService
	case "payment":
		return c.paymentService
	case "seed":
		return c.seedService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pool.DB
}

// Close releases the Redis client, if any.
func (c *ServiceContainer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.redisService == nil {
		return nil
	}
	err := c.redisService.Close()
	c.redisService = nil
	return err
}
