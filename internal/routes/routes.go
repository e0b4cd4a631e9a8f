package routes

import (
	"homeserve_backend/internal/handlers"
	"homeserve_backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	m *metrics.Metrics,
) {
	ginRouter.GET("/health", appHandlers.HealthHandler.Health)
	if m != nil {
		ginRouter.GET("/metrics", gin.WrapH(m.Handler()))
	}

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.CatalogHandler.RegisterRoutes(api)
		appHandlers.BookingHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
	}
}
