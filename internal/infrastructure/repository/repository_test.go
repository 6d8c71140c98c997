package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/domain/packages"
	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/domain/setting"
	"github.com/fiberdesk/fiberdesk/internal/domain/subscription"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/testdb"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	apperrors "github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) biztime.Date { return biztime.NewDate(y, m, d) }

func newCustomer(code, email string) *customer.Customer {
	return &customer.Customer{
		CustomerID:       code,
		Name:             "Customer " + code,
		Email:            email,
		Phone:            "0812",
		Address:          "Jl. Merdeka 1",
		MonthlyFee:       250000,
		Status:           customer.StatusPending,
		RegistrationDate: date(2024, time.January, 15),
		IsActive:         true,
	}
}

func seedOLT(t *testing.T, repo network.OLTRepository, name string, active bool) *network.OLT {
	t.Helper()
	olt := &network.OLT{Name: name, Location: "HQ", Ports: network.Ports{Total: 16}, Status: network.StatusActive, IsActive: active}
	require.NoError(t, repo.Create(context.Background(), olt))
	return olt
}

func TestOLTRepository(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewOLTRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		olt := seedOLT(t, repo, "Core Huawei", true)
		assert.NotZero(t, olt.ID)

		got, err := repo.GetByID(ctx, olt.ID)
		require.NoError(t, err)
		assert.Equal(t, "Core Huawei", got.Name)
		assert.Equal(t, 16, got.Ports.Total)
		assert.Nil(t, got.UpdatedAt)
	})

	t.Run("missing id maps to sentinel", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, network.ErrOLTNotFound)
	})

	t.Run("search is case insensitive across brand", func(t *testing.T) {
		olt := &network.OLT{Name: "Edge", Location: "North", Brand: ptr("ZTE"), Status: network.StatusMaintenance, IsActive: true}
		require.NoError(t, repo.Create(ctx, olt))

		list, err := repo.List(ctx, network.Filter{Search: "zt"}, query.DefaultPage())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, olt.ID, list[0].ID)

		status := network.StatusMaintenance
		list, err = repo.List(ctx, network.Filter{Status: &status}, query.DefaultPage())
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("partial update leaves other columns", func(t *testing.T) {
		olt := seedOLT(t, repo, "Patch Me", true)
		require.NoError(t, repo.Update(ctx, olt.ID, map[string]interface{}{"used_ports": 4}))

		got, err := repo.GetByID(ctx, olt.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, got.Ports.Used)
		assert.Equal(t, "Patch Me", got.Name)
		assert.NotNil(t, got.UpdatedAt)
	})

	t.Run("delete then get yields not found", func(t *testing.T) {
		olt := seedOLT(t, repo, "Short Lived", true)
		require.NoError(t, repo.Delete(ctx, olt.ID))

		_, err := repo.GetByID(ctx, olt.ID)
		assert.ErrorIs(t, err, network.ErrOLTNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, olt.ID), network.ErrOLTNotFound)
	})
}

func TestOLTRepository_Pagination(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewOLTRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	var ids []uint
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		ids = append(ids, seedOLT(t, repo, name, true).ID)
	}

	list, err := repo.List(ctx, network.Filter{}, query.Page{Skip: 1, Limit: 3})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, ids[1], list[0].ID)
	assert.Equal(t, ids[3], list[2].ID)

	list, err = repo.List(ctx, network.Filter{}, query.Page{Skip: 4, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNetworkRepositories_ActiveTraversal(t *testing.T) {
	gdb := testdb.New(t)
	log := logger.NewLogger()
	olts := NewOLTRepository(gdb, log)
	odcs := NewODCRepository(gdb, log)
	odps := NewODPRepository(gdb, log)
	ctx := context.Background()

	active := seedOLT(t, olts, "active", true)
	inactive := seedOLT(t, olts, "inactive", false)

	odc1 := &network.ODC{Name: "C1", Location: "x", OLTID: active.ID, Status: network.StatusActive, IsActive: true}
	odc2 := &network.ODC{Name: "C2", Location: "x", OLTID: inactive.ID, Status: network.StatusActive, IsActive: true}
	odc3 := &network.ODC{Name: "C3", Location: "x", OLTID: active.ID, Status: network.StatusActive, IsActive: false}
	for _, odc := range []*network.ODC{odc1, odc2, odc3} {
		require.NoError(t, odcs.Create(ctx, odc))
	}
	odp := &network.ODP{Name: "P1", Location: "x", ODCID: odc1.ID, Status: network.StatusActive, IsActive: true}
	require.NoError(t, odps.Create(ctx, odp))

	list, err := olts.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)

	children, err := odcs.ListActiveByOLTIDs(ctx, []uint{active.ID})
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, odc1.ID, children[0].ID)

	leaves, err := odps.ListActiveByODCIDs(ctx, []uint{odc1.ID})
	require.NoError(t, err)
	assert.Len(t, leaves, 1)

	empty, err := odps.ListActiveByODCIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	count, err := odcs.CountByOLT(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	a, i, err := olts.CountByActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), a)
	assert.Equal(t, int64(1), i)
}

func TestCustomerRepository(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewCustomerRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	t.Run("alternate keys", func(t *testing.T) {
		c := newCustomer("CUST-001", "one@example.com")
		require.NoError(t, repo.Create(ctx, c))

		byCode, err := repo.GetByCustomerID(ctx, "CUST-001")
		require.NoError(t, err)
		assert.Equal(t, c.ID, byCode.ID)
		assert.Equal(t, "2024-01-15", byCode.RegistrationDate.String())

		byEmail, err := repo.GetByEmail(ctx, "one@example.com")
		require.NoError(t, err)
		assert.Equal(t, c.ID, byEmail.ID)

		_, err = repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
	})

	t.Run("unique index rejects duplicates", func(t *testing.T) {
		err := repo.Create(ctx, newCustomer("CUST-001", "other@example.com"))
		require.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))

		err = repo.Create(ctx, newCustomer("CUST-999", "one@example.com"))
		require.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))
	})

	t.Run("aggregates", func(t *testing.T) {
		c := newCustomer("CUST-002", "two@example.com")
		c.Status = customer.StatusActive
		c.ODPID = ptr(uint(7))
		c.IsActive = false
		require.NoError(t, repo.Create(ctx, c))

		byStatus, err := repo.CountByStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), byStatus[customer.StatusPending])
		assert.Equal(t, int64(1), byStatus[customer.StatusActive])

		activeCount, err := repo.CountActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), activeCount)

		perODP, err := repo.CountByODPIDs(ctx, []uint{7, 8})
		require.NoError(t, err)
		assert.Equal(t, int64(1), perODP[7])
		assert.Zero(t, perODP[8])
	})

	t.Run("search matches customer code and email", func(t *testing.T) {
		list, err := repo.List(ctx, customer.Filter{Search: "TWO@"}, query.DefaultPage())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "CUST-002", list[0].CustomerID)
	})

	t.Run("update date column", func(t *testing.T) {
		c, err := repo.GetByCustomerID(ctx, "CUST-002")
		require.NoError(t, err)
		require.NoError(t, repo.Update(ctx, c.ID, map[string]interface{}{
			"registration_date": date(2024, time.March, 1),
			"notes":             ptr("moved"),
		}))

		got, err := repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", got.RegistrationDate.String())
		assert.Equal(t, "moved", *got.Notes)
	})
}

func TestPackageRepository(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewPackageRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	basic := &packages.Package{Name: "Basic 10", Speed: ptr("10 Mbps"), Price: 150000, IsActive: true}
	legacy := &packages.Package{Name: "Legacy", Price: 0, IsActive: false}
	require.NoError(t, repo.Create(ctx, basic))
	require.NoError(t, repo.Create(ctx, legacy))

	got, err := repo.GetByID(ctx, legacy.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	isActive := true
	list, err := repo.List(ctx, packages.Filter{IsActive: &isActive}, query.DefaultPage())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, basic.ID, list[0].ID)

	list, err = repo.List(ctx, packages.Filter{Search: "mbps"}, query.DefaultPage())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	active, total, err := repo.CountByActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)
	assert.Equal(t, int64(2), total)
}

func TestSubscriptionRepository_ListEndingBetween(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewSubscriptionRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	today := date(2024, time.May, 10)
	create := func(end *biztime.Date, status subscription.Status) *subscription.Subscription {
		s := &subscription.Subscription{
			CustomerID: 1, PackageID: 1,
			StartDate: date(2024, time.January, 1), EndDate: end,
			MonthlyFee: 100, Status: status, IsActive: true,
		}
		require.NoError(t, repo.Create(ctx, s))
		return s
	}

	yesterday := create(ptr(today.AddDays(-1)), subscription.StatusActive)
	onToday := create(ptr(today), subscription.StatusActive)
	lastDay := create(ptr(today.AddDays(7)), subscription.StatusActive)
	beyond := create(ptr(today.AddDays(8)), subscription.StatusActive)
	create(nil, subscription.StatusActive)
	create(ptr(today.AddDays(2)), subscription.StatusSuspended)

	list, err := repo.ListEndingBetween(ctx, subscription.StatusActive, today, today.AddDays(7))
	require.NoError(t, err)

	ids := make([]uint, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	assert.ElementsMatch(t, []uint{onToday.ID, lastDay.ID}, ids)
	assert.NotContains(t, ids, yesterday.ID)
	assert.NotContains(t, ids, beyond.ID)

	billable, err := repo.ListBillable(ctx)
	require.NoError(t, err)
	assert.Len(t, billable, 5)
}

func TestPaymentRepository(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewPaymentRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	create := func(amount float64, status payment.Status, paidOn, due biztime.Date) *payment.Payment {
		p := &payment.Payment{
			CustomerID: 1, SubscriptionID: 1, Amount: amount,
			PaymentDate: paidOn, DueDate: due, Status: status,
		}
		require.NoError(t, repo.Create(ctx, p))
		return p
	}

	today := date(2024, time.June, 15)
	create(100, payment.StatusPaid, date(2024, time.June, 1), date(2024, time.June, 1))
	create(200, payment.StatusPaid, date(2024, time.June, 30), date(2024, time.June, 20))
	create(400, payment.StatusPaid, date(2024, time.July, 1), date(2024, time.July, 1))
	create(50, payment.StatusPending, date(2024, time.June, 10), date(2024, time.June, 14))
	dueToday := create(70, payment.StatusPending, today, today)
	create(30, payment.StatusOverdue, date(2024, time.June, 2), date(2024, time.June, 2))

	t.Run("summary range is inclusive", func(t *testing.T) {
		from, to := date(2024, time.June, 1), date(2024, time.June, 30)
		summary, err := repo.Summarize(ctx, payment.DateRange{From: &from, To: &to})
		require.NoError(t, err)

		assert.Equal(t, int64(5), summary.TotalPayments)
		assert.InDelta(t, 300, summary.TotalAmount, 0.001)

		breakdown := map[payment.Status]payment.StatusTotal{}
		for _, row := range summary.StatusBreakdown {
			breakdown[row.Status] = row
		}
		assert.Equal(t, int64(2), breakdown[payment.StatusPaid].Count)
		assert.Equal(t, int64(2), breakdown[payment.StatusPending].Count)
		assert.InDelta(t, 120, breakdown[payment.StatusPending].TotalAmount, 0.001)
	})

	t.Run("unbounded summary", func(t *testing.T) {
		summary, err := repo.Summarize(ctx, payment.DateRange{})
		require.NoError(t, err)
		assert.Equal(t, int64(6), summary.TotalPayments)
		assert.InDelta(t, 700, summary.TotalAmount, 0.001)
	})

	t.Run("due before is strict", func(t *testing.T) {
		overdue, err := repo.ListDueBefore(ctx, payment.StatusOverdue, today)
		require.NoError(t, err)
		assert.Len(t, overdue, 1)

		moved, err := repo.TransitionDueBefore(ctx, payment.StatusPending, payment.StatusOverdue, today)
		require.NoError(t, err)
		assert.Equal(t, int64(1), moved)

		p, err := repo.GetByID(ctx, dueToday.ID)
		require.NoError(t, err)
		assert.Equal(t, payment.StatusPending, p.Status)
	})

	t.Run("existence in month", func(t *testing.T) {
		exists, err := repo.ExistsForSubscriptionDueBetween(ctx, 1, date(2024, time.July, 1), date(2024, time.July, 31))
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsForSubscriptionDueBetween(ctx, 1, date(2024, time.August, 1), date(2024, time.August, 31))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestSystemSettingRepository_InsertIfAbsent(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewSystemSettingRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, setting.ErrSettingsNotFound)

	inserted, err := repo.InsertIfAbsent(ctx, setting.Defaults())
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertIfAbsent(ctx, setting.Defaults())
	require.NoError(t, err)
	assert.False(t, inserted)

	var rows int64
	require.NoError(t, gdb.Table("system_settings").Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	require.NoError(t, repo.Update(ctx, setting.SingletonID, map[string]interface{}{"theme": "dark"}))
	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, 30, got.SessionTimeout)
}

func TestRepositories_JoinTransaction(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewPackageRepository(gdb, logger.NewLogger())
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.Create(txCtx, &packages.Package{Name: "Rolled back", IsActive: true}); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	require.ErrorIs(t, err, gorm.ErrInvalidData)

	list, err := repo.List(ctx, packages.Filter{}, query.DefaultPage())
	require.NoError(t, err)
	assert.Empty(t, list)
}
