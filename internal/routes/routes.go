package routes

import (
	"sponsorly_backend/internal/auth"
	"sponsorly_backend/internal/handlers"
	"sponsorly_backend/internal/logger"
	"sponsorly_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
) {
	api := ginRouter.Group("/api")

	// Публичные маршруты
	appHandlers.HealthHandler.RegisterRoutes(api)
	appHandlers.AuthHandler.RegisterRoutes(api)

	// Маршруты под JWT
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		appHandlers.ProfileHandler.RegisterRoutes(protected)
		appHandlers.DiscoveryHandler.RegisterRoutes(protected)
		appHandlers.MessageHandler.RegisterRoutes(protected)
	}

	appHandlers.SupportHandler.RegisterRoutes(api, protected)

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logger.Debug("HTTP routes registered", "routes", len(ginRouter.Routes()))
}
