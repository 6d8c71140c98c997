package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/domain/packages"
	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/domain/subscription"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/testdb"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/repository"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
)

func TestGetDashboardStatsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	gdb := testdb.New(t)
	log := logger.NewLogger()

	require.NoError(t, biztime.Init("UTC"))
	restore := biztime.SetNowFunc(func() time.Time { return time.Date(2024, time.October, 15, 8, 0, 0, 0, time.UTC) })
	t.Cleanup(func() {
		restore()
		_ = biztime.Init(biztime.DefaultTimezone)
	})

	customers := repository.NewCustomerRepository(gdb, log)
	payments := repository.NewPaymentRepository(gdb, log)
	pkgs := repository.NewPackageRepository(gdb, log)
	subs := repository.NewSubscriptionRepository(gdb, log)
	olts := repository.NewOLTRepository(gdb, log)
	odcs := repository.NewODCRepository(gdb, log)
	odps := repository.NewODPRepository(gdb, log)

	activeOLT := &network.OLT{Name: "A", Location: "HQ", Status: network.StatusActive, IsActive: true}
	require.NoError(t, olts.Create(ctx, activeOLT))
	require.NoError(t, olts.Create(ctx, &network.OLT{Name: "B", Location: "HQ", Status: network.StatusInactive, IsActive: false}))
	odc := &network.ODC{Name: "C", Location: "X", OLTID: activeOLT.ID, Status: network.StatusActive, IsActive: true}
	require.NoError(t, odcs.Create(ctx, odc))
	require.NoError(t, odps.Create(ctx, &network.ODP{Name: "P", Location: "Y", ODCID: odc.ID, Status: network.StatusActive, IsActive: true}))

	pkg := &packages.Package{Name: "Home", Price: 100, IsActive: true}
	require.NoError(t, pkgs.Create(ctx, pkg))
	require.NoError(t, pkgs.Create(ctx, &packages.Package{Name: "Legacy", Price: 50, IsActive: false}))

	newCustomer := func(code string, status customer.Status) uint {
		c := &customer.Customer{
			CustomerID: code, Name: code, Email: code + "@example.com", Phone: "1", Address: "A",
			Status: status, RegistrationDate: biztime.NewDate(2024, time.January, 1), IsActive: true,
		}
		require.NoError(t, customers.Create(ctx, c))
		return c.ID
	}
	owner := newCustomer("C-1", customer.StatusActive)
	newCustomer("C-2", customer.StatusActive)
	newCustomer("C-3", customer.StatusSuspended)

	sub := &subscription.Subscription{CustomerID: owner, PackageID: pkg.ID, StartDate: biztime.NewDate(2024, time.January, 1), MonthlyFee: 100, Status: subscription.StatusActive, IsActive: true}
	require.NoError(t, subs.Create(ctx, sub))

	addPayment := func(amount float64, paidOn biztime.Date, status payment.Status) {
		require.NoError(t, payments.Create(ctx, &payment.Payment{
			CustomerID: owner, SubscriptionID: sub.ID, Amount: amount,
			PaymentDate: paidOn, DueDate: paidOn, Status: status,
		}))
	}
	addPayment(100, biztime.NewDate(2024, time.October, 2), payment.StatusPaid)
	addPayment(200, biztime.NewDate(2024, time.September, 20), payment.StatusPaid)
	addPayment(300, biztime.NewDate(2024, time.October, 20), payment.StatusPending)
	addPayment(400, biztime.NewDate(2024, time.August, 20), payment.StatusOverdue)

	uc := NewGetDashboardStatsUseCase(customers, payments, pkgs, olts, odcs, odps, log)
	stats, err := uc.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Customers.Total)
	assert.Equal(t, int64(2), stats.Customers.ByStatus["active"])
	assert.Equal(t, int64(1), stats.Customers.ByStatus["suspended"])
	assert.Equal(t, int64(0), stats.Customers.ByStatus["pending"])

	assert.InDelta(t, 300.0, stats.Revenue.Total, 0.001)
	assert.InDelta(t, 100.0, stats.Revenue.ThisMonth, 0.001)
	assert.Equal(t, int64(1), stats.Payments.Pending)
	assert.Equal(t, int64(1), stats.Payments.Overdue)

	assert.Equal(t, int64(2), stats.Infrastructure.OLTs.Total)
	assert.Equal(t, int64(1), stats.Infrastructure.OLTs.Inactive)
	assert.Equal(t, int64(1), stats.Infrastructure.ODCs.Active)
	assert.Equal(t, int64(1), stats.Infrastructure.ODPs.Total)

	assert.Equal(t, int64(2), stats.Packages.Total)
	assert.Equal(t, int64(1), stats.Packages.Active)
}
