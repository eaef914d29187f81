package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "propertyops-http-service/docs"
	"propertyops-http-service/internal/app/controllers"
	"propertyops-http-service/internal/app/middleware"
	"propertyops-http-service/internal/app/web"
	"propertyops-http-service/internal/domain/services"
	"propertyops-http-service/internal/domain/services/container"
	"propertyops-http-service/internal/infrastructure/config"
	"propertyops-http-service/internal/infrastructure/metrics"
	Logger "propertyops-http-service/pkg/logger"
)

// SetupRouter builds the engine with every route and middleware attached
func SetupRouter(serviceContainer *container.ServiceContainer) *gin.Engine {
	cfg := serviceContainer.GetService("config").(*config.Config)
	m, _ := serviceContainer.GetService("metrics").(*metrics.Metrics)

	r := gin.New()
	r.Use(gin.RecoveryWithWriter(Logger.Writer()))
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if m != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
	}

	web.Register(r)

	registerRoutes(r, serviceContainer, cfg)
	return r
}

// registerRoutes configures the /api routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	cfg *config.Config,
) {
	api := r.Group("/api")
	if cfg.RateLimitEnabled {
		api.Use(rateLimiter(container, cfg))
	}

	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "health"))

	tenantGroup := api.Group("/tenants")
	{
		tenantGroup.GET("", controllers.HandleTenantFunc(container, "getTenants"))
		tenantGroup.GET("/:id", controllers.HandleTenantFunc(container, "getTenant"))
		tenantGroup.POST("", controllers.HandleTenantFunc(container, "createTenant"))
		tenantGroup.PATCH("/:id", controllers.HandleTenantFunc(container, "updateTenant"))
		tenantGroup.PUT("/:id", controllers.HandleTenantFunc(container, "updateTenant"))
		tenantGroup.DELETE("/:id", controllers.HandleTenantFunc(container, "deleteTenant"))
	}

	unitGroup := api.Group("/units")
	{
		unitGroup.GET("", controllers.HandleUnitFunc(container, "getUnits"))
		unitGroup.GET("/:id", controllers.HandleUnitFunc(container, "getUnit"))
		unitGroup.POST("", controllers.HandleUnitFunc(container, "createUnit"))
		unitGroup.PATCH("/:id", controllers.HandleUnitFunc(container, "updateUnit"))
		unitGroup.PUT("/:id", controllers.HandleUnitFunc(container, "updateUnit"))
		unitGroup.DELETE("/:id", controllers.HandleUnitFunc(container, "deleteUnit"))
	}

	requestGroup := api.Group("/maintenance_requests")
	{
		requestGroup.GET("", controllers.HandleMaintenanceRequestFunc(container, "getMaintenanceRequests"))
		requestGroup.GET("/:id", controllers.HandleMaintenanceRequestFunc(container, "getMaintenanceRequest"))
		requestGroup.POST("", controllers.HandleMaintenanceRequestFunc(container, "createMaintenanceRequest"))
		requestGroup.PATCH("/:id", controllers.HandleMaintenanceRequestFunc(container, "updateMaintenanceRequest"))
		requestGroup.PUT("/:id", controllers.HandleMaintenanceRequestFunc(container, "updateMaintenanceRequest"))
		requestGroup.DELETE("/:id", controllers.HandleMaintenanceRequestFunc(container, "deleteMaintenanceRequest"))
	}

	// Payments are append-only.
	paymentGroup := api.Group("/payments")
	{
		paymentGroup.GET("", controllers.HandlePaymentFunc(container, "getPayments"))
		paymentGroup.POST("", controllers.HandlePaymentFunc(container, "createPayment"))
	}
}

func rateLimiter(container *container.ServiceContainer, cfg *config.Config) gin.HandlerFunc {
	limiterConfig := middleware.RateLimiterConfig{
		Rate:       cfg.RateLimitRPS,
		Burst:      cfg.RateLimitBurst,
		ExpiryTime: middleware.DefaultRateLimiterConfig.ExpiryTime,
	}
	if redisService, ok := container.GetService("redis").(services.InterfaceRedisService); ok {
		limiterConfig.Store = middleware.NewRedisStore(redisService, cfg.RateLimitRPS, cfg.RateLimitBurst)
		Logger.Info("rate limiting /api through redis at %s", cfg.GetRedisAddr())
	}
	return middleware.RateLimiter(limiterConfig)
}
