package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fiberdesk/fiberdesk/internal/interfaces/http/handlers"
)

// CustomerRouteConfig holds the configuration for customer routes
type CustomerRouteConfig struct {
	Handler *handlers.CustomerHandler
}

// SetupCustomerRoutes configures customer routes
func SetupCustomerRoutes(engine *gin.Engine, config *CustomerRouteConfig) {
	customers := engine.Group("/customers")
	{
		customers.GET("", config.Handler.ListCustomers)
		customers.POST("", config.Handler.CreateCustomer)

		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts
		customers.GET("/stats/status-summary", config.Handler.StatusSummary)
		customers.GET("/stats/active-count", config.Handler.ActiveCount)
		customers.GET("/by-customer-id/:customer_id", config.Handler.GetByCustomerID)
		customers.GET("/by-package/:package_id", config.Handler.ListByPackage)
		customers.GET("/by-odp/:odp_id", config.Handler.ListByODP)
		customers.GET("/export", config.Handler.ExportCustomers)
		customers.POST("/import", config.Handler.ImportCustomers)

		customers.GET("/:id", config.Handler.GetCustomer)
		customers.PUT("/:id", config.Handler.UpdateCustomer)
		customers.DELETE("/:id", config.Handler.DeleteCustomer)
	}
}
