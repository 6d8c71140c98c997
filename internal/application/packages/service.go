// Package packages provides the application service for service packages.
package packages

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/fiberdesk/fiberdesk/internal/application/packages/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/domain/packages"
	"github.com/fiberdesk/fiberdesk/internal/domain/subscription"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/metrics"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
	"github.com/fiberdesk/fiberdesk/internal/shared/services/markdown"
)

type Service struct {
	packageRepo      packages.Repository
	customerRepo     customer.Repository
	subscriptionRepo subscription.Repository
	features         markdown.FeatureRenderer
	txManager        *db.TransactionManager
	logger           logger.Interface
}

func NewService(
	packageRepo packages.Repository,
	customerRepo customer.Repository,
	subscriptionRepo subscription.Repository,
	features markdown.FeatureRenderer,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *Service {
	return &Service{
		packageRepo:      packageRepo,
		customerRepo:     customerRepo,
		subscriptionRepo: subscriptionRepo,
		features:         features,
		txManager:        txManager,
		logger:           logger,
	}
}

func (s *Service) List(ctx context.Context, filter packages.Filter, page query.Page) ([]*dto.PackageResponse, error) {
	list, err := s.packageRepo.List(ctx, filter, page)
	if err != nil {
		s.logger.Errorw("failed to list packages", "error", err)
		return nil, err
	}

	out := make([]*dto.PackageResponse, 0, len(list))
	for _, p := range list {
		out = append(out, s.toResponse(p))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*dto.PackageResponse, error) {
	p, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err)
	}
	return s.toResponse(p), nil
}

func (s *Service) Create(ctx context.Context, req dto.CreatePackageRequest) (*dto.PackageResponse, error) {
	p := req.ToDomain()
	if err := s.packageRepo.Create(ctx, p); err != nil {
		s.logger.Errorw("failed to create package", "name", p.Name, "error", err)
		return nil, err
	}

	metrics.RecordWrite("package", "create")
	s.logger.Infow("package created", "id", p.ID, "name", p.Name)
	return s.toResponse(p), nil
}

func (s *Service) Update(ctx context.Context, id uint, req dto.UpdatePackageRequest) (*dto.PackageResponse, error) {
	var updated *packages.Package
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.requirePackage(ctx, id); err != nil {
			return err
		}

		if changes := req.Changes(); len(changes) > 0 {
			if err := s.packageRepo.Update(ctx, id, changes); err != nil {
				return translateError(err)
			}
		}

		var err error
		updated, err = s.packageRepo.GetByID(ctx, id)
		return translateError(err)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite("package", "update")
	s.logger.Infow("package updated", "id", id)
	return s.toResponse(updated), nil
}

// Delete removes a package no customer or subscription refers to.
func (s *Service) Delete(ctx context.Context, id uint) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.requirePackage(ctx, id); err != nil {
			return err
		}

		customers, err := s.customerRepo.CountByPackage(ctx, id)
		if err != nil {
			return err
		}
		subscriptions, err := s.subscriptionRepo.CountByPackage(ctx, id)
		if err != nil {
			return err
		}
		if customers > 0 || subscriptions > 0 {
			s.logger.Warnw("package delete blocked by references", "id", id, "customers", customers, "subscriptions", subscriptions)
			return errors.NewConflictError(fmt.Sprintf(
				"Cannot delete package: referenced by %d customer(s) and %d subscription(s)", customers, subscriptions))
		}

		return translateError(s.packageRepo.Delete(ctx, id))
	})
	if err != nil {
		return err
	}

	metrics.RecordWrite("package", "delete")
	s.logger.Infow("package deleted", "id", id)
	return nil
}

func (s *Service) requirePackage(ctx context.Context, id uint) error {
	exists, err := s.packageRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return translateError(packages.ErrPackageNotFound)
	}
	return nil
}

// toResponse renders the feature markdown. A rendering failure leaves
// features_html empty rather than failing the read.
func (s *Service) toResponse(p *packages.Package) *dto.PackageResponse {
	var featuresHTML string
	if p.Features != nil {
		html, err := s.features.Render(*p.Features)
		if err != nil {
			s.logger.Warnw("failed to render package features", "id", p.ID, "error", err)
		} else {
			featuresHTML = html
		}
	}
	return dto.ToPackageResponse(p, featuresHTML)
}

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, packages.ErrPackageNotFound):
		return errors.NewNotFoundError("Package not found")
	default:
		return err
	}
}
