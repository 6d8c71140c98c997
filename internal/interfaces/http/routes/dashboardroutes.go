package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fiberdesk/fiberdesk/internal/interfaces/http/handlers"
)

// DashboardRouteConfig holds the configuration for dashboard routes
type DashboardRouteConfig struct {
	Handler *handlers.DashboardHandler
}

// SetupDashboardRoutes configures dashboard routes
func SetupDashboardRoutes(engine *gin.Engine, config *DashboardRouteConfig) {
	dashboard := engine.Group("/dashboard")
	{
		dashboard.GET("/stats", config.Handler.GetStats)
	}
}
