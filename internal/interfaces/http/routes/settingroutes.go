package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fiberdesk/fiberdesk/internal/interfaces/http/handlers"
)

// SettingRouteConfig holds the configuration for setting routes
type SettingRouteConfig struct {
	Handler *handlers.SettingHandler
}

// SetupSettingRoutes configures system setting routes
func SetupSettingRoutes(engine *gin.Engine, config *SettingRouteConfig) {
	settings := engine.Group("/settings")
	{
		settings.GET("", config.Handler.GetSettings)
		settings.PUT("", config.Handler.UpdateSettings)
		settings.GET("/export", config.Handler.ExportSettings)
		settings.POST("/import", config.Handler.ImportSettings)
		settings.POST("/notifications/test", config.Handler.TestNotifications)
	}
}
