package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fiberdesk/fiberdesk/internal/interfaces/http/handlers"
)

// ServiceRouteConfig holds the configuration for package, subscription and payment routes
type ServiceRouteConfig struct {
	PackageHandler      *handlers.PackageHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	PaymentHandler      *handlers.PaymentHandler
}

// SetupServiceRoutes configures the /services routes
func SetupServiceRoutes(engine *gin.Engine, config *ServiceRouteConfig) {
	services := engine.Group("/services")

	pkgs := services.Group("/packages")
	{
		pkgs.GET("", config.PackageHandler.ListPackages)
		pkgs.POST("", config.PackageHandler.CreatePackage)
		pkgs.GET("/:id", config.PackageHandler.GetPackage)
		pkgs.PUT("/:id", config.PackageHandler.UpdatePackage)
		pkgs.DELETE("/:id", config.PackageHandler.DeletePackage)
	}

	subscriptions := services.Group("/subscriptions")
	{
		subscriptions.GET("", config.SubscriptionHandler.ListSubscriptions)
		subscriptions.POST("", config.SubscriptionHandler.CreateSubscription)
		subscriptions.GET("/active", config.SubscriptionHandler.ListActive)
		subscriptions.GET("/expiring", config.SubscriptionHandler.ListExpiring)
		subscriptions.GET("/:id", config.SubscriptionHandler.GetSubscription)
		subscriptions.PUT("/:id", config.SubscriptionHandler.UpdateSubscription)
		subscriptions.DELETE("/:id", config.SubscriptionHandler.DeleteSubscription)
	}

	payments := services.Group("/payments")
	{
		payments.GET("", config.PaymentHandler.ListPayments)
		payments.POST("", config.PaymentHandler.CreatePayment)
		payments.GET("/overdue", config.PaymentHandler.ListOverdue)
		payments.GET("/summary", config.PaymentHandler.Summary)
		payments.POST("/generate", config.PaymentHandler.Generate)
		payments.POST("/mark-overdue", config.PaymentHandler.MarkOverdue)
		payments.GET("/:id", config.PaymentHandler.GetPayment)
		payments.PUT("/:id", config.PaymentHandler.UpdatePayment)
		payments.DELETE("/:id", config.PaymentHandler.DeletePayment)
		payments.POST("/:id/pay", config.PaymentHandler.Pay)
	}
}
