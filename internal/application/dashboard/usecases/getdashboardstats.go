package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fiberdesk/fiberdesk/internal/application/dashboard/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/domain/packages"
	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
)

// GetDashboardStatsUseCase assembles the dashboard snapshot.
type GetDashboardStatsUseCase struct {
	customerRepo customer.Repository
	paymentRepo  payment.Repository
	packageRepo  packages.Repository
	oltRepo      network.OLTRepository
	odcRepo      network.ODCRepository
	odpRepo      network.ODPRepository
	logger       logger.Interface
}

func NewGetDashboardStatsUseCase(
	customerRepo customer.Repository,
	paymentRepo payment.Repository,
	packageRepo packages.Repository,
	oltRepo network.OLTRepository,
	odcRepo network.ODCRepository,
	odpRepo network.ODPRepository,
	log logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		packageRepo:  packageRepo,
		oltRepo:      oltRepo,
		odcRepo:      odcRepo,
		odpRepo:      odpRepo,
		logger:       log,
	}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*dto.StatsResponse, error) {
	uc.logger.Debugw("fetching dashboard stats")

	today := biztime.Today()
	monthStart := biztime.StartOfMonth(today.Year(), today.Month())
	monthEnd := biztime.EndOfMonth(today.Year(), today.Month())

	var (
		customersByStatus map[customer.Status]int64
		paymentsByStatus  map[payment.Status]int64
		totalRevenue      float64
		monthlyRevenue    float64
		olts, odcs, odps  dto.NodeCounts
		activePackages    int64
		totalPackages     int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := uc.customerRepo.CountByStatus(gctx)
		if err != nil {
			uc.logger.Errorw("failed to count customers by status", "error", err)
			return errors.NewInternalError("failed to count customers")
		}
		customersByStatus = counts
		return nil
	})

	g.Go(func() error {
		counts, err := uc.paymentRepo.CountByStatus(gctx)
		if err != nil {
			uc.logger.Errorw("failed to count payments by status", "error", err)
			return errors.NewInternalError("failed to count payments")
		}
		paymentsByStatus = counts
		return nil
	})

	// Revenue: all time
	g.Go(func() error {
		summary, err := uc.paymentRepo.Summarize(gctx, payment.DateRange{})
		if err != nil {
			uc.logger.Errorw("failed to summarize revenue", "error", err)
			return errors.NewInternalError("failed to summarize revenue")
		}
		totalRevenue = summary.TotalAmount
		return nil
	})

	// Revenue: current month
	g.Go(func() error {
		summary, err := uc.paymentRepo.Summarize(gctx, payment.DateRange{From: &monthStart, To: &monthEnd})
		if err != nil {
			uc.logger.Errorw("failed to summarize monthly revenue", "error", err)
			return errors.NewInternalError("failed to summarize monthly revenue")
		}
		monthlyRevenue = summary.TotalAmount
		return nil
	})

	g.Go(func() error {
		active, inactive, err := uc.oltRepo.CountByActive(gctx)
		if err != nil {
			uc.logger.Errorw("failed to count OLTs", "error", err)
			return errors.NewInternalError("failed to count OLTs")
		}
		olts = dto.NewNodeCounts(active, inactive)
		return nil
	})

	g.Go(func() error {
		active, inactive, err := uc.odcRepo.CountByActive(gctx)
		if err != nil {
			uc.logger.Errorw("failed to count ODCs", "error", err)
			return errors.NewInternalError("failed to count ODCs")
		}
		odcs = dto.NewNodeCounts(active, inactive)
		return nil
	})

	g.Go(func() error {
		active, inactive, err := uc.odpRepo.CountByActive(gctx)
		if err != nil {
			uc.logger.Errorw("failed to count ODPs", "error", err)
			return errors.NewInternalError("failed to count ODPs")
		}
		odps = dto.NewNodeCounts(active, inactive)
		return nil
	})

	g.Go(func() error {
		active, total, err := uc.packageRepo.CountByActive(gctx)
		if err != nil {
			uc.logger.Errorw("failed to count packages", "error", err)
			return errors.NewInternalError("failed to count packages")
		}
		activePackages, totalPackages = active, total
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	customers := dto.CustomersSection{ByStatus: make(map[string]int64, len(customer.Statuses))}
	for _, status := range customer.Statuses {
		n := customersByStatus[status]
		customers.ByStatus[status.String()] = n
		customers.Total += n
	}

	return &dto.StatsResponse{
		Customers: customers,
		Revenue: dto.RevenueSection{
			Total:     totalRevenue,
			ThisMonth: monthlyRevenue,
		},
		Payments: dto.PaymentsSection{
			Pending: paymentsByStatus[payment.StatusPending],
			Overdue: paymentsByStatus[payment.StatusOverdue],
		},
		Infrastructure: dto.InfrastructureSection{OLTs: olts, ODCs: odcs, ODPs: odps},
		Packages:       dto.PackagesSection{Total: totalPackages, Active: activePackages},
	}, nil
}
