package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fiberdesk/fiberdesk/internal/interfaces/http/handlers"
)

// InfrastructureRouteConfig holds the configuration for OLT, ODC and ODP routes
type InfrastructureRouteConfig struct {
	Handler *handlers.NetworkHandler
}

// SetupInfrastructureRoutes configures network infrastructure routes
func SetupInfrastructureRoutes(engine *gin.Engine, config *InfrastructureRouteConfig) {
	infra := engine.Group("/infrastructure")

	infra.GET("/hierarchy", config.Handler.Hierarchy)
	infra.GET("/map", config.Handler.Map)

	olts := infra.Group("/olts")
	{
		olts.GET("", config.Handler.ListOLTs)
		olts.POST("", config.Handler.CreateOLT)
		olts.GET("/:id", config.Handler.GetOLT)
		olts.PUT("/:id", config.Handler.UpdateOLT)
		olts.DELETE("/:id", config.Handler.DeleteOLT)
		olts.GET("/:id/odcs", config.Handler.ListOLTODCs)
	}

	odcs := infra.Group("/odcs")
	{
		odcs.GET("", config.Handler.ListODCs)
		odcs.POST("", config.Handler.CreateODC)
		odcs.GET("/:id", config.Handler.GetODC)
		odcs.PUT("/:id", config.Handler.UpdateODC)
		odcs.DELETE("/:id", config.Handler.DeleteODC)
		odcs.GET("/:id/odps", config.Handler.ListODCODPs)
	}

	odps := infra.Group("/odps")
	{
		odps.GET("", config.Handler.ListODPs)
		odps.POST("", config.Handler.CreateODP)
		odps.GET("/:id", config.Handler.GetODP)
		odps.PUT("/:id", config.Handler.UpdateODP)
		odps.DELETE("/:id", config.Handler.DeleteODP)
		odps.GET("/:id/customers", config.Handler.ListODPCustomers)
	}
}
