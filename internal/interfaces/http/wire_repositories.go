package http

import (
	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/domain/packages"
	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/domain/setting"
	"github.com/fiberdesk/fiberdesk/internal/domain/subscription"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	oltRepo          network.OLTRepository
	odcRepo          network.ODCRepository
	odpRepo          network.ODPRepository
	customerRepo     customer.Repository
	packageRepo      packages.Repository
	subscriptionRepo subscription.Repository
	paymentRepo      payment.Repository
	settingRepo      setting.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		oltRepo:          repository.NewOLTRepository(c.db, c.log),
		odcRepo:          repository.NewODCRepository(c.db, c.log),
		odpRepo:          repository.NewODPRepository(c.db, c.log),
		customerRepo:     repository.NewCustomerRepository(c.db, c.log),
		packageRepo:      repository.NewPackageRepository(c.db, c.log),
		subscriptionRepo: repository.NewSubscriptionRepository(c.db, c.log),
		paymentRepo:      repository.NewPaymentRepository(c.db, c.log),
		settingRepo:      repository.NewSystemSettingRepository(c.db, c.log),
	}
}
