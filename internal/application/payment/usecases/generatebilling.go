package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/domain/subscription"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/metrics"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
)

// GenerateResult counts the outcome of one billing run.
type GenerateResult struct {
	Created int
	Skipped int
}

// GenerateBillingUseCase raises one pending payment per billable
// subscription for a calendar month.
type GenerateBillingUseCase struct {
	subscriptionRepo subscription.Repository
	paymentRepo      payment.Repository
	txManager        *db.TransactionManager
	dueDay           int
	logger           logger.Interface
}

func NewGenerateBillingUseCase(
	subscriptionRepo subscription.Repository,
	paymentRepo payment.Repository,
	txManager *db.TransactionManager,
	dueDay int,
	logger logger.Interface,
) *GenerateBillingUseCase {
	return &GenerateBillingUseCase{
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		txManager:        txManager,
		dueDay:           dueDay,
		logger:           logger,
	}
}

// DueDate returns the configured due day within the month, clamped to the
// month's length.
func (uc *GenerateBillingUseCase) DueDate(year int, month time.Month) biztime.Date {
	last := biztime.EndOfMonth(year, month).Day()
	day := uc.dueDay
	if day < 1 {
		day = 1
	}
	if day > last {
		day = last
	}
	return biztime.NewDate(year, month, day)
}

// Execute skips subscriptions that already have a payment due in the month,
// so repeated runs for the same month create nothing new.
func (uc *GenerateBillingUseCase) Execute(ctx context.Context, year int, month time.Month) (*GenerateResult, error) {
	subs, err := uc.subscriptionRepo.ListBillable(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list billable subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list billable subscriptions: %w", err)
	}

	result := &GenerateResult{}
	if len(subs) == 0 {
		uc.logger.Debugw("no billable subscriptions found", "year", year, "month", int(month))
		return result, nil
	}

	uc.logger.Infow("processing billing run", "year", year, "month", int(month), "count", len(subs))

	from := biztime.StartOfMonth(year, month)
	to := biztime.EndOfMonth(year, month)
	due := uc.DueDate(year, month)

	for _, sub := range subs {
		created := false
		err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
			exists, err := uc.paymentRepo.ExistsForSubscriptionDueBetween(ctx, sub.ID, from, to)
			if err != nil || exists {
				return err
			}

			p := &payment.Payment{
				CustomerID:     sub.CustomerID,
				SubscriptionID: sub.ID,
				Amount:         sub.MonthlyFee,
				PaymentDate:    due,
				DueDate:        due,
				Status:         payment.StatusPending,
			}
			if err := uc.paymentRepo.Create(ctx, p); err != nil {
				return err
			}
			created = true
			return nil
		})
		if err != nil {
			uc.logger.Errorw("failed to generate payment",
				"error", err,
				"subscription_id", sub.ID,
				"customer_id", sub.CustomerID)
			return nil, fmt.Errorf("failed to generate payment for subscription %d: %w", sub.ID, err)
		}

		if created {
			result.Created++
		} else {
			result.Skipped++
		}
	}

	metrics.RecordPaymentsGenerated(result.Created)
	uc.logger.Infow("billing run processed",
		"year", year,
		"month", int(month),
		"due_date", due.String(),
		"created", result.Created,
		"skipped", result.Skipped)

	return result, nil
}
