package usecases

import (
	"context"
	"fmt"

	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/metrics"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
)

// MarkOverdueUseCase flags pending payments whose due date has passed.
type MarkOverdueUseCase struct {
	paymentRepo payment.Repository
	logger      logger.Interface
}

func NewMarkOverdueUseCase(paymentRepo payment.Repository, logger logger.Interface) *MarkOverdueUseCase {
	return &MarkOverdueUseCase{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// Execute moves pending payments with due_date before today to overdue and
// returns how many changed.
func (uc *MarkOverdueUseCase) Execute(ctx context.Context) (int64, error) {
	today := biztime.Today()

	updated, err := uc.paymentRepo.TransitionDueBefore(ctx, payment.StatusPending, payment.StatusOverdue, today)
	if err != nil {
		uc.logger.Errorw("failed to mark payments overdue", "error", err, "today", today.String())
		return 0, fmt.Errorf("failed to mark payments overdue: %w", err)
	}

	if updated == 0 {
		uc.logger.Debugw("no pending payments past due", "today", today.String())
		return 0, nil
	}

	metrics.RecordPaymentsMarkedOverdue(updated)
	uc.logger.Infow("payments marked overdue", "count", updated, "today", today.String())
	return updated, nil
}
