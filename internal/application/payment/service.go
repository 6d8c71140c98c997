// Package payment provides the application service for payments and monthly
// billing.
package payment

import (
	"context"
	stderrors "errors"

	"github.com/fiberdesk/fiberdesk/internal/application/payment/dto"
	"github.com/fiberdesk/fiberdesk/internal/application/payment/usecases"
	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/domain/subscription"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/metrics"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

const subscriptionOwnershipMessage = "Subscription does not belong to customer"

type Service struct {
	paymentRepo      payment.Repository
	customerRepo     customer.Repository
	subscriptionRepo subscription.Repository
	generateUC       *usecases.GenerateBillingUseCase
	markOverdueUC    *usecases.MarkOverdueUseCase
	txManager        *db.TransactionManager
	logger           logger.Interface
}

// NewService creates the payment service. dueDay is the day of month
// generated payments fall due.
func NewService(
	paymentRepo payment.Repository,
	customerRepo customer.Repository,
	subscriptionRepo subscription.Repository,
	txManager *db.TransactionManager,
	dueDay int,
	logger logger.Interface,
) *Service {
	return &Service{
		paymentRepo:      paymentRepo,
		customerRepo:     customerRepo,
		subscriptionRepo: subscriptionRepo,
		generateUC:       usecases.NewGenerateBillingUseCase(subscriptionRepo, paymentRepo, txManager, dueDay, logger),
		markOverdueUC:    usecases.NewMarkOverdueUseCase(paymentRepo, logger),
		txManager:        txManager,
		logger:           logger,
	}
}

func (s *Service) List(ctx context.Context, filter payment.Filter, page query.Page) ([]*dto.PaymentResponse, error) {
	list, err := s.paymentRepo.List(ctx, filter, page)
	if err != nil {
		s.logger.Errorw("failed to list payments", "error", err)
		return nil, err
	}
	return dto.ToPaymentResponses(list), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*dto.PaymentResponse, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err)
	}
	return dto.ToPaymentResponse(p), nil
}

func (s *Service) Create(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	p := req.ToDomain()
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkOwnership(ctx, p.CustomerID, p.SubscriptionID); err != nil {
			return err
		}
		return s.paymentRepo.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite("payment", "create")
	s.logger.Infow("payment created", "id", p.ID, "subscription_id", p.SubscriptionID, "amount", p.Amount)
	return dto.ToPaymentResponse(p), nil
}

func (s *Service) Update(ctx context.Context, id uint, req dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	var updated *payment.Payment
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.paymentRepo.GetByID(ctx, id)
		if err != nil {
			return translateError(err)
		}

		customerID := req.CustomerID.Or(current.CustomerID)
		subscriptionID := req.SubscriptionID.Or(current.SubscriptionID)
		if customerID != current.CustomerID || subscriptionID != current.SubscriptionID {
			if err := s.checkOwnership(ctx, customerID, subscriptionID); err != nil {
				return err
			}
		}

		if changes := req.Changes(); len(changes) > 0 {
			if err := s.paymentRepo.Update(ctx, id, changes); err != nil {
				return translateError(err)
			}
		}

		updated, err = s.paymentRepo.GetByID(ctx, id)
		return translateError(err)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite("payment", "update")
	s.logger.Infow("payment updated", "id", id)
	return dto.ToPaymentResponse(updated), nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return translateError(err)
	}

	metrics.RecordWrite("payment", "delete")
	s.logger.Infow("payment deleted", "id", id)
	return nil
}

// checkOwnership verifies both references exist and that the subscription
// belongs to the customer.
func (s *Service) checkOwnership(ctx context.Context, customerID, subscriptionID uint) error {
	exists, err := s.customerRepo.Exists(ctx, customerID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFoundError("Customer not found")
	}

	sub, err := s.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		if stderrors.Is(err, subscription.ErrSubscriptionNotFound) {
			return errors.NewNotFoundError("Subscription not found")
		}
		return err
	}
	if sub.CustomerID != customerID {
		s.logger.Warnw("payment subscription ownership mismatch",
			"customer_id", customerID,
			"subscription_id", subscriptionID,
			"subscription_customer_id", sub.CustomerID)
		return errors.NewValidationError(subscriptionOwnershipMessage)
	}
	return nil
}

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, payment.ErrPaymentNotFound):
		return errors.NewNotFoundError("Payment not found")
	default:
		return err
	}
}
