package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/fiberdesk/fiberdesk/internal/application/payment/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/metrics"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
)

// Overdue returns payments flagged overdue whose due date is before today.
func (s *Service) Overdue(ctx context.Context) ([]*dto.PaymentResponse, error) {
	list, err := s.paymentRepo.ListDueBefore(ctx, payment.StatusOverdue, biztime.Today())
	if err != nil {
		s.logger.Errorw("failed to list overdue payments", "error", err)
		return nil, err
	}
	return dto.ToPaymentResponses(list), nil
}

func (s *Service) Summary(ctx context.Context, q dto.SummaryQuery) (*dto.SummaryResponse, error) {
	period := q.Range()
	if period.From != nil && period.To != nil && period.From.After(*period.To) {
		return nil, errors.NewValidationError("start_date must not be after end_date")
	}

	summary, err := s.paymentRepo.Summarize(ctx, period)
	if err != nil {
		s.logger.Errorw("failed to summarize payments", "error", err)
		return nil, err
	}
	return dto.ToSummaryResponse(summary), nil
}

// Pay settles a pending or overdue payment.
func (s *Service) Pay(ctx context.Context, id uint, req dto.PayRequest) (*dto.PaymentResponse, error) {
	var paid *payment.Payment
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.paymentRepo.GetByID(ctx, id)
		if err != nil {
			return translateError(err)
		}
		if !current.CanBeSettled() {
			return errors.NewConflictError(fmt.Sprintf("Payment is already %s", current.Status))
		}

		paidOn := biztime.Today()
		if req.PaymentDate != nil {
			paidOn = *req.PaymentDate
		}
		changes := map[string]interface{}{
			"status":       payment.StatusPaid.String(),
			"payment_date": paidOn,
		}
		if req.PaymentMethod != nil {
			changes["payment_method"] = req.PaymentMethod
		}
		if req.ReferenceNumber != nil {
			changes["reference_number"] = req.ReferenceNumber
		}
		if err := s.paymentRepo.Update(ctx, id, changes); err != nil {
			return translateError(err)
		}

		paid, err = s.paymentRepo.GetByID(ctx, id)
		return translateError(err)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite("payment", "pay")
	s.logger.Infow("payment settled", "id", id, "payment_date", paid.PaymentDate.String())
	return dto.ToPaymentResponse(paid), nil
}

// Generate raises the monthly payments for every billable subscription.
func (s *Service) Generate(ctx context.Context, req dto.GenerateRequest) (*dto.GenerateResponse, error) {
	result, err := s.generateUC.Execute(ctx, req.Year, time.Month(req.Month))
	if err != nil {
		return nil, err
	}
	return &dto.GenerateResponse{Created: result.Created, Skipped: result.Skipped}, nil
}

func (s *Service) MarkOverdue(ctx context.Context) (*dto.MarkOverdueResponse, error) {
	updated, err := s.markOverdueUC.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.MarkOverdueResponse{Updated: updated}, nil
}
