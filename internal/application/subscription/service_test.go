package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fiberdesk/fiberdesk/internal/application/subscription/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/domain/packages"
	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/domain/subscription"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/models"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/testdb"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/repository"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/patch"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

type fixture struct {
	svc       *Service
	gdb       *gorm.DB
	customers customer.Repository
	packages  packages.Repository
	payments  payment.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := testdb.New(t)
	log := logger.NewLogger()
	f := &fixture{
		gdb:       gdb,
		customers: repository.NewCustomerRepository(gdb, log),
		packages:  repository.NewPackageRepository(gdb, log),
		payments:  repository.NewPaymentRepository(gdb, log),
	}
	f.svc = NewService(
		repository.NewSubscriptionRepository(gdb, log),
		f.customers,
		f.packages,
		f.payments,
		db.NewTransactionManager(gdb),
		log,
	)
	return f
}

func ptr[T any](v T) *T { return &v }

func (f *fixture) seedCustomer(t *testing.T, code string) uint {
	t.Helper()
	c := &customer.Customer{
		CustomerID:       code,
		Name:             "Siti " + code,
		Email:            code + "@example.com",
		Phone:            "0812",
		Address:          "Jl. Sudirman 1",
		MonthlyFee:       150000,
		Status:           customer.StatusActive,
		RegistrationDate: biztime.NewDate(2024, time.January, 5),
		IsActive:         true,
	}
	require.NoError(t, f.customers.Create(context.Background(), c))
	return c.ID
}

func (f *fixture) seedPackage(t *testing.T) uint {
	t.Helper()
	p := &packages.Package{Name: "Home 30", Price: 300000, IsActive: true}
	require.NoError(t, f.packages.Create(context.Background(), p))
	return p.ID
}

func createRequest(customerID, packageID uint) dto.CreateSubscriptionRequest {
	return dto.CreateSubscriptionRequest{
		CustomerID: ptr(customerID),
		PackageID:  ptr(packageID),
		StartDate:  ptr(biztime.NewDate(2024, time.March, 1)),
		MonthlyFee: ptr(300000.0),
	}
}

func countSubscriptions(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(&models.SubscriptionModel{}).Count(&n).Error)
	return n
}

func pinToday(t *testing.T, d biztime.Date) {
	t.Helper()
	require.NoError(t, biztime.Init("UTC"))
	restore := biztime.SetNowFunc(func() time.Time { return d.Time().Add(10 * time.Hour) })
	t.Cleanup(func() {
		restore()
		_ = biztime.Init(biztime.DefaultTimezone)
	})
}

func TestCreate_Defaults(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Create(context.Background(), createRequest(f.seedCustomer(t, "C-1"), f.seedPackage(t)))
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "active", resp.Status)
	assert.True(t, resp.IsActive)
	assert.Nil(t, resp.EndDate)
	assert.Equal(t, "2024-03-01", resp.StartDate.String())
}

func TestCreate_MissingReferencesPersistNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customerID := f.seedCustomer(t, "C-1")
	packageID := f.seedPackage(t)

	tests := []struct {
		name    string
		req     dto.CreateSubscriptionRequest
		message string
	}{
		{"missing package", createRequest(customerID, packageID+100), "Package not found"},
		{"missing customer", createRequest(customerID+100, packageID), "Customer not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, errors.IsNotFoundError(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
	assert.Equal(t, int64(0), countSubscriptions(t, f.gdb))
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customerID := f.seedCustomer(t, "C-1")
	packageID := f.seedPackage(t)

	created, err := f.svc.Create(ctx, createRequest(customerID, packageID))
	require.NoError(t, err)

	t.Run("absent fields untouched", func(t *testing.T) {
		end := biztime.NewDate(2024, time.December, 31)
		updated, err := f.svc.Update(ctx, created.ID, dto.UpdateSubscriptionRequest{
			EndDate: patch.Of(&end),
			Status:  patch.Of("suspended"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.EndDate)
		assert.Equal(t, "2024-12-31", updated.EndDate.String())
		assert.Equal(t, "suspended", updated.Status)
		assert.Equal(t, 300000.0, updated.MonthlyFee)
		assert.Equal(t, packageID, updated.PackageID)
		assert.NotNil(t, updated.UpdatedAt)
	})

	t.Run("null clears end date", func(t *testing.T) {
		updated, err := f.svc.Update(ctx, created.ID, dto.UpdateSubscriptionRequest{EndDate: patch.Of[*biztime.Date](nil)})
		require.NoError(t, err)
		assert.Nil(t, updated.EndDate)
	})

	t.Run("unchanged package is not re-checked", func(t *testing.T) {
		_, err := f.svc.Update(ctx, created.ID, dto.UpdateSubscriptionRequest{PackageID: patch.Of(packageID)})
		require.NoError(t, err)
	})

	t.Run("changed package must exist", func(t *testing.T) {
		_, err := f.svc.Update(ctx, created.ID, dto.UpdateSubscriptionRequest{PackageID: patch.Of(packageID + 50)})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("missing subscription", func(t *testing.T) {
		_, err := f.svc.Update(ctx, created.ID+100, dto.UpdateSubscriptionRequest{Notes: patch.Of(ptr("x"))})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestDelete_GuardedByPayments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customerID := f.seedCustomer(t, "C-1")

	created, err := f.svc.Create(ctx, createRequest(customerID, f.seedPackage(t)))
	require.NoError(t, err)

	due := biztime.NewDate(2024, time.March, 20)
	p := &payment.Payment{
		CustomerID:     customerID,
		SubscriptionID: created.ID,
		Amount:         300000,
		PaymentDate:    due,
		DueDate:        due,
		Status:         payment.StatusPending,
	}
	require.NoError(t, f.payments.Create(ctx, p))

	err = f.svc.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, int64(1), countSubscriptions(t, f.gdb))

	require.NoError(t, f.payments.Delete(ctx, p.ID))
	require.NoError(t, f.svc.Delete(ctx, created.ID))

	_, err = f.svc.Get(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdate_CustomerChangeGuardedByPayments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.seedCustomer(t, "C-1")
	other := f.seedCustomer(t, "C-2")

	created, err := f.svc.Create(ctx, createRequest(owner, f.seedPackage(t)))
	require.NoError(t, err)

	due := biztime.NewDate(2024, time.March, 20)
	p := &payment.Payment{
		CustomerID:     owner,
		SubscriptionID: created.ID,
		Amount:         300000,
		PaymentDate:    due,
		DueDate:        due,
		Status:         payment.StatusPending,
	}
	require.NoError(t, f.payments.Create(ctx, p))

	_, err = f.svc.Update(ctx, created.ID, dto.UpdateSubscriptionRequest{CustomerID: patch.Of(other)})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Contains(t, err.Error(), "1 payment(s) still attached")

	current, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, owner, current.CustomerID)

	t.Run("same customer is not blocked", func(t *testing.T) {
		_, err := f.svc.Update(ctx, created.ID, dto.UpdateSubscriptionRequest{CustomerID: patch.Of(owner)})
		require.NoError(t, err)
	})

	t.Run("moves once payments are gone", func(t *testing.T) {
		require.NoError(t, f.payments.Delete(ctx, p.ID))
		updated, err := f.svc.Update(ctx, created.ID, dto.UpdateSubscriptionRequest{CustomerID: patch.Of(other)})
		require.NoError(t, err)
		assert.Equal(t, other, updated.CustomerID)
	})
}

func TestList_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.seedCustomer(t, "C-1")
	second := f.seedCustomer(t, "C-2")
	packageID := f.seedPackage(t)

	_, err := f.svc.Create(ctx, createRequest(first, packageID))
	require.NoError(t, err)
	suspended := createRequest(first, packageID)
	suspended.Status = ptr("suspended")
	_, err = f.svc.Create(ctx, suspended)
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, createRequest(second, packageID))
	require.NoError(t, err)

	status := subscription.StatusSuspended
	tests := []struct {
		name   string
		filter subscription.Filter
		expect int
	}{
		{"no filter", subscription.Filter{}, 3},
		{"by customer", subscription.Filter{CustomerID: &first}, 2},
		{"by status", subscription.Filter{Status: &status}, 1},
		{"customer and status", subscription.Filter{CustomerID: &second, Status: &status}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := f.svc.List(ctx, tt.filter, query.DefaultPage())
			require.NoError(t, err)
			assert.Len(t, list, tt.expect)
		})
	}

	active, err := f.svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestListExpiring_WindowIsInclusive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := biztime.NewDate(2024, time.June, 10)
	pinToday(t, today)

	customerID := f.seedCustomer(t, "C-1")
	packageID := f.seedPackage(t)

	endingOn := func(offset int, status string) uint {
		req := createRequest(customerID, packageID)
		end := today.AddDays(offset)
		req.EndDate = &end
		req.Status = ptr(status)
		resp, err := f.svc.Create(ctx, req)
		require.NoError(t, err)
		return resp.ID
	}

	endsToday := endingOn(0, "active")
	endsLastDay := endingOn(7, "active")
	endingOn(-1, "active")
	endingOn(8, "active")
	endingOn(3, "expired")
	_, err := f.svc.Create(ctx, createRequest(customerID, packageID))
	require.NoError(t, err)

	list, err := f.svc.ListExpiring(ctx, dto.DefaultDaysAhead)
	require.NoError(t, err)
	ids := make([]uint, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	assert.ElementsMatch(t, []uint{endsToday, endsLastDay}, ids)

	_, err = f.svc.ListExpiring(ctx, 0)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestExpiringQuery_DefaultsToSevenDays(t *testing.T) {
	assert.Equal(t, 7, dto.ExpiringQuery{}.Days())
	assert.Equal(t, 30, dto.ExpiringQuery{DaysAhead: ptr(30)}.Days())
}
