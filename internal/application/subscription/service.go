// Package subscription provides the application service for customer
// subscriptions.
package subscription

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/fiberdesk/fiberdesk/internal/application/subscription/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/domain/packages"
	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/domain/subscription"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/metrics"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

type Service struct {
	subscriptionRepo subscription.Repository
	customerRepo     customer.Repository
	packageRepo      packages.Repository
	paymentRepo      payment.Repository
	txManager        *db.TransactionManager
	logger           logger.Interface
}

func NewService(
	subscriptionRepo subscription.Repository,
	customerRepo customer.Repository,
	packageRepo packages.Repository,
	paymentRepo payment.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *Service {
	return &Service{
		subscriptionRepo: subscriptionRepo,
		customerRepo:     customerRepo,
		packageRepo:      packageRepo,
		paymentRepo:      paymentRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (s *Service) List(ctx context.Context, filter subscription.Filter, page query.Page) ([]*dto.SubscriptionResponse, error) {
	list, err := s.subscriptionRepo.List(ctx, filter, page)
	if err != nil {
		s.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, err
	}
	return dto.ToSubscriptionResponses(list), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*dto.SubscriptionResponse, error) {
	sub, err := s.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err)
	}
	return dto.ToSubscriptionResponse(sub), nil
}

// ListActive returns every subscription in status active.
func (s *Service) ListActive(ctx context.Context) ([]*dto.SubscriptionResponse, error) {
	list, err := s.subscriptionRepo.ListByStatus(ctx, subscription.StatusActive)
	if err != nil {
		s.logger.Errorw("failed to list active subscriptions", "error", err)
		return nil, err
	}
	return dto.ToSubscriptionResponses(list), nil
}

// ListExpiring returns active subscriptions whose end date falls within
// [today, today+days] in the business timezone.
func (s *Service) ListExpiring(ctx context.Context, days int) ([]*dto.SubscriptionResponse, error) {
	if days < 1 {
		return nil, errors.NewValidationError("days_ahead must be at least 1")
	}

	today := biztime.Today()
	list, err := s.subscriptionRepo.ListEndingBetween(ctx, subscription.StatusActive, today, today.AddDays(days))
	if err != nil {
		s.logger.Errorw("failed to list expiring subscriptions", "days", days, "error", err)
		return nil, err
	}
	return dto.ToSubscriptionResponses(list), nil
}

func (s *Service) Create(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	sub := req.ToDomain()
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireCustomer(ctx, sub.CustomerID); err != nil {
			return err
		}
		if err := s.requirePackage(ctx, sub.PackageID); err != nil {
			return err
		}
		return s.subscriptionRepo.Create(ctx, sub)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite("subscription", "create")
	s.logger.Infow("subscription created", "id", sub.ID, "customer_id", sub.CustomerID, "package_id", sub.PackageID)
	return dto.ToSubscriptionResponse(sub), nil
}

func (s *Service) Update(ctx context.Context, id uint, req dto.UpdateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	var updated *dto.SubscriptionResponse
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.subscriptionRepo.GetByID(ctx, id)
		if err != nil {
			return translateError(err)
		}

		if customerID, ok := req.CustomerID.Get(); ok && customerID != current.CustomerID {
			if err := s.requireCustomer(ctx, customerID); err != nil {
				return err
			}
			// Payments carry the owning customer, so a subscription with
			// payments cannot move.
			payments, err := s.paymentRepo.CountBySubscription(ctx, id)
			if err != nil {
				return err
			}
			if payments > 0 {
				s.logger.Warnw("subscription customer change blocked by payments", "id", id, "payments", payments)
				return errors.NewConflictError(fmt.Sprintf("Cannot change customer: %d payment(s) still attached", payments))
			}
		}
		if packageID, ok := req.PackageID.Get(); ok && packageID != current.PackageID {
			if err := s.requirePackage(ctx, packageID); err != nil {
				return err
			}
		}

		if changes := req.Changes(); len(changes) > 0 {
			if err := s.subscriptionRepo.Update(ctx, id, changes); err != nil {
				return translateError(err)
			}
		}

		refreshed, err := s.subscriptionRepo.GetByID(ctx, id)
		if err != nil {
			return translateError(err)
		}
		updated = dto.ToSubscriptionResponse(refreshed)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite("subscription", "update")
	s.logger.Infow("subscription updated", "id", id)
	return updated, nil
}

// Delete removes a subscription that has no payments.
func (s *Service) Delete(ctx context.Context, id uint) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.subscriptionRepo.GetByID(ctx, id); err != nil {
			return translateError(err)
		}

		payments, err := s.paymentRepo.CountBySubscription(ctx, id)
		if err != nil {
			return err
		}
		if payments > 0 {
			s.logger.Warnw("subscription delete blocked by payments", "id", id, "payments", payments)
			return errors.NewConflictError(fmt.Sprintf("Cannot delete subscription: %d payment(s) still attached", payments))
		}

		return translateError(s.subscriptionRepo.Delete(ctx, id))
	})
	if err != nil {
		return err
	}

	metrics.RecordWrite("subscription", "delete")
	s.logger.Infow("subscription deleted", "id", id)
	return nil
}

func (s *Service) requireCustomer(ctx context.Context, id uint) error {
	exists, err := s.customerRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFoundError("Customer not found")
	}
	return nil
}

func (s *Service) requirePackage(ctx context.Context, id uint) error {
	exists, err := s.packageRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFoundError("Package not found")
	}
	return nil
}

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, subscription.ErrSubscriptionNotFound):
		return errors.NewNotFoundError("Subscription not found")
	default:
		return err
	}
}
