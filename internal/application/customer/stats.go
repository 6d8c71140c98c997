package customer

import (
	"context"

	"github.com/fiberdesk/fiberdesk/internal/application/customer/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

// StatusSummary returns the number of customers per status. Only statuses
// that occur are present.
func (s *Service) StatusSummary(ctx context.Context) (map[string]int64, error) {
	counts, err := s.customerRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Errorw("failed to count customers by status", "error", err)
		return nil, err
	}

	summary := make(map[string]int64, len(counts))
	for status, n := range counts {
		summary[status.String()] = n
	}
	return summary, nil
}

// ActiveCount returns the number of customers flagged active.
func (s *Service) ActiveCount(ctx context.Context) (*dto.CountResponse, error) {
	n, err := s.customerRepo.CountActive(ctx)
	if err != nil {
		s.logger.Errorw("failed to count active customers", "error", err)
		return nil, err
	}
	return &dto.CountResponse{Count: n}, nil
}

func (s *Service) ListByPackage(ctx context.Context, packageID uint, page query.Page) ([]*dto.CustomerResponse, error) {
	return s.List(ctx, customer.Filter{PackageID: &packageID}, page)
}

func (s *Service) ListByODP(ctx context.Context, odpID uint, page query.Page) ([]*dto.CustomerResponse, error) {
	return s.List(ctx, customer.Filter{ODPID: &odpID}, page)
}
