package http

import (
	"context"

	"github.com/fiberdesk/fiberdesk/internal/infrastructure/database"
	"github.com/fiberdesk/fiberdesk/internal/interfaces/http/handlers"
)

// allHandlers holds the HTTP handlers registered by the router.
type allHandlers struct {
	health       *handlers.HealthHandler
	network      *handlers.NetworkHandler
	customer     *handlers.CustomerHandler
	pkg          *handlers.PackageHandler
	subscription *handlers.SubscriptionHandler
	payment      *handlers.PaymentHandler
	setting      *handlers.SettingHandler
	dashboard    *handlers.DashboardHandler
}

func (c *Container) initHandlers() {
	s := c.svcs
	ping := func(ctx context.Context) error { return database.Ping(ctx, c.db) }

	c.hdlrs = &allHandlers{
		health:       handlers.NewHealthHandler(ping, c.log),
		network:      handlers.NewNetworkHandler(s.network, c.log),
		customer:     handlers.NewCustomerHandler(s.customer, c.log),
		pkg:          handlers.NewPackageHandler(s.packages, c.log),
		subscription: handlers.NewSubscriptionHandler(s.subscription, c.log),
		payment:      handlers.NewPaymentHandler(s.payment, s.payment, c.log),
		setting:      handlers.NewSettingHandler(s.setting, c.log),
		dashboard:    handlers.NewDashboardHandler(s.getDashboardStatsUC, c.log),
	}
}
