// Package customer provides the application service for customers.
package customer

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/fiberdesk/fiberdesk/internal/application/customer/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/domain/packages"
	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/domain/subscription"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/metrics"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

const (
	msgCustomerIDRegistered = "Customer ID already registered"
	msgEmailRegistered      = "Email already registered"
	msgCustomerIDInUse      = "Customer ID already in use"
	msgEmailInUse           = "Email already in use"
)

type Service struct {
	customerRepo     customer.Repository
	odpRepo          network.ODPRepository
	packageRepo      packages.Repository
	subscriptionRepo subscription.Repository
	paymentRepo      payment.Repository
	txManager        *db.TransactionManager
	logger           logger.Interface
}

func NewService(
	customerRepo customer.Repository,
	odpRepo network.ODPRepository,
	packageRepo packages.Repository,
	subscriptionRepo subscription.Repository,
	paymentRepo payment.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *Service {
	return &Service{
		customerRepo:     customerRepo,
		odpRepo:          odpRepo,
		packageRepo:      packageRepo,
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (s *Service) List(ctx context.Context, filter customer.Filter, page query.Page) ([]*dto.CustomerResponse, error) {
	list, err := s.customerRepo.List(ctx, filter, page)
	if err != nil {
		s.logger.Errorw("failed to list customers", "error", err)
		return nil, err
	}
	return dto.ToCustomerResponses(list), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*dto.CustomerResponse, error) {
	c, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err)
	}
	return dto.ToCustomerResponse(c), nil
}

// GetByCustomerID looks a customer up by account code.
func (s *Service) GetByCustomerID(ctx context.Context, code string) (*dto.CustomerResponse, error) {
	c, err := s.customerRepo.GetByCustomerID(ctx, code)
	if err != nil {
		return nil, translateError(err)
	}
	return dto.ToCustomerResponse(c), nil
}

// Create registers a customer. Account code and email must be unused and
// any referenced ODP or package must exist.
func (s *Service) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	c := req.ToDomain()
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.create(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite("customer", "create")
	s.logger.Infow("customer created", "id", c.ID, "customer_id", c.CustomerID)
	return dto.ToCustomerResponse(c), nil
}

func (s *Service) create(ctx context.Context, c *customer.Customer) error {
	if err := s.checkUnique(ctx, c.CustomerID, c.Email, 0, msgCustomerIDRegistered, msgEmailRegistered); err != nil {
		return err
	}
	if err := s.checkReferences(ctx, c.ODPID, c.PackageID); err != nil {
		return err
	}

	if err := s.customerRepo.Create(ctx, c); err != nil {
		if errors.IsDuplicateError(err) {
			s.logger.Warnw("concurrent duplicate customer", "customer_id", c.CustomerID, "email", c.Email)
			return errors.NewConflictError("Customer ID or email already registered")
		}
		s.logger.Errorw("failed to create customer", "customer_id", c.CustomerID, "error", err)
		return err
	}
	return nil
}

// Update applies the supplied fields. Uniqueness and references are only
// re-checked for fields whose value actually changes.
func (s *Service) Update(ctx context.Context, id uint, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	var updated *customer.Customer
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.customerRepo.GetByID(ctx, id)
		if err != nil {
			return translateError(err)
		}

		code := ""
		if v, ok := req.CustomerID.Get(); ok && v != current.CustomerID {
			code = v
		}
		email := ""
		if v, ok := req.Email.Get(); ok && v != current.Email {
			email = v
		}
		if err := s.checkUnique(ctx, code, email, id, msgCustomerIDInUse, msgEmailInUse); err != nil {
			return err
		}

		var odpID, packageID *uint
		if v, ok := req.ODPID.Get(); ok && v != nil && !sameID(v, current.ODPID) {
			odpID = v
		}
		if v, ok := req.PackageID.Get(); ok && v != nil && !sameID(v, current.PackageID) {
			packageID = v
		}
		if err := s.checkReferences(ctx, odpID, packageID); err != nil {
			return err
		}

		if changes := req.Changes(); len(changes) > 0 {
			if err := s.customerRepo.Update(ctx, id, changes); err != nil {
				if errors.IsDuplicateError(err) {
					return errors.NewConflictError("Customer ID or email already in use")
				}
				return translateError(err)
			}
		}

		updated, err = s.customerRepo.GetByID(ctx, id)
		return translateError(err)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite("customer", "update")
	s.logger.Infow("customer updated", "id", id)
	return dto.ToCustomerResponse(updated), nil
}

// Delete removes a customer with no subscriptions and no payments.
func (s *Service) Delete(ctx context.Context, id uint) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.customerRepo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return translateError(customer.ErrCustomerNotFound)
		}

		subscriptions, err := s.subscriptionRepo.CountByCustomer(ctx, id)
		if err != nil {
			return err
		}
		payments, err := s.paymentRepo.CountByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if subscriptions > 0 || payments > 0 {
			s.logger.Warnw("customer delete blocked by dependants", "id", id, "subscriptions", subscriptions, "payments", payments)
			return errors.NewConflictError(fmt.Sprintf(
				"Cannot delete customer: %d subscription(s) and %d payment(s) still recorded", subscriptions, payments))
		}

		return translateError(s.customerRepo.Delete(ctx, id))
	})
	if err != nil {
		return err
	}

	metrics.RecordWrite("customer", "delete")
	s.logger.Infow("customer deleted", "id", id)
	return nil
}

// checkUnique rejects a code or email already held by a customer other than
// exceptID. Empty values are not checked.
func (s *Service) checkUnique(ctx context.Context, code, email string, exceptID uint, codeMsg, emailMsg string) error {
	if code != "" {
		taken, err := s.heldByOther(ctx, s.customerRepo.GetByCustomerID, code, exceptID)
		if err != nil {
			return err
		}
		if taken {
			return errors.NewConflictError(codeMsg)
		}
	}
	if email != "" {
		taken, err := s.heldByOther(ctx, s.customerRepo.GetByEmail, email, exceptID)
		if err != nil {
			return err
		}
		if taken {
			return errors.NewConflictError(emailMsg)
		}
	}
	return nil
}

func (s *Service) heldByOther(
	ctx context.Context,
	lookup func(context.Context, string) (*customer.Customer, error),
	value string,
	exceptID uint,
) (bool, error) {
	existing, err := lookup(ctx, value)
	if stderrors.Is(err, customer.ErrCustomerNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID != exceptID, nil
}

func (s *Service) checkReferences(ctx context.Context, odpID, packageID *uint) error {
	if odpID != nil {
		exists, err := s.odpRepo.Exists(ctx, *odpID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NewNotFoundError("ODP not found")
		}
	}
	if packageID != nil {
		exists, err := s.packageRepo.Exists(ctx, *packageID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NewNotFoundError("Package not found")
		}
	}
	return nil
}

func sameID(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, customer.ErrCustomerNotFound):
		return errors.NewNotFoundError("Customer not found")
	default:
		return err
	}
}
