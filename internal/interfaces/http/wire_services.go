package http

import (
	customerApp "github.com/fiberdesk/fiberdesk/internal/application/customer"
	dashboardUsecases "github.com/fiberdesk/fiberdesk/internal/application/dashboard/usecases"
	networkApp "github.com/fiberdesk/fiberdesk/internal/application/network"
	packagesApp "github.com/fiberdesk/fiberdesk/internal/application/packages"
	paymentApp "github.com/fiberdesk/fiberdesk/internal/application/payment"
	settingApp "github.com/fiberdesk/fiberdesk/internal/application/setting"
	subscriptionApp "github.com/fiberdesk/fiberdesk/internal/application/subscription"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/services/markdown"
)

// services holds the application services, one per resource family.
type services struct {
	network      *networkApp.Service
	customer     *customerApp.Service
	packages     *packagesApp.Service
	subscription *subscriptionApp.Service
	payment      *paymentApp.Service
	setting      *settingApp.Service

	getDashboardStatsUC *dashboardUsecases.GetDashboardStatsUseCase
}

func (c *Container) initServices() {
	r := c.repos
	txManager := db.NewTransactionManager(c.db)

	c.svcs = &services{
		network: networkApp.NewService(
			r.oltRepo, r.odcRepo, r.odpRepo, r.customerRepo, txManager, c.log,
		),
		customer: customerApp.NewService(
			r.customerRepo, r.odpRepo, r.packageRepo, r.subscriptionRepo, r.paymentRepo, txManager, c.log,
		),
		packages: packagesApp.NewService(
			r.packageRepo, r.customerRepo, r.subscriptionRepo, markdown.NewFeatureRenderer(), txManager, c.log,
		),
		subscription: subscriptionApp.NewService(
			r.subscriptionRepo, r.customerRepo, r.packageRepo, r.paymentRepo, txManager, c.log,
		),
		payment: paymentApp.NewService(
			r.paymentRepo, r.customerRepo, r.subscriptionRepo, txManager, c.cfg.Billing.DueDay, c.log,
		),
		setting: settingApp.NewService(r.settingRepo, txManager, c.log),

		getDashboardStatsUC: dashboardUsecases.NewGetDashboardStatsUseCase(
			r.customerRepo, r.paymentRepo, r.packageRepo, r.oltRepo, r.odcRepo, r.odpRepo, c.log,
		),
	}
}
