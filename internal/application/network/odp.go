package network

import (
	"context"
	"fmt"

	customerdto "github.com/fiberdesk/fiberdesk/internal/application/customer/dto"
	"github.com/fiberdesk/fiberdesk/internal/application/network/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/metrics"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

func (s *Service) ListODPs(ctx context.Context, filter network.Filter, page query.Page) ([]*dto.ODPResponse, error) {
	list, err := s.odpRepo.List(ctx, filter, page)
	if err != nil {
		s.logger.Errorw("failed to list ODPs", "error", err)
		return nil, err
	}
	return dto.ToODPResponses(list), nil
}

func (s *Service) GetODP(ctx context.Context, id uint) (*dto.ODPResponse, error) {
	odp, err := s.odpRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err)
	}
	return dto.ToODPResponse(odp), nil
}

// CreateODP stores a distribution point under an existing ODC.
func (s *Service) CreateODP(ctx context.Context, req dto.CreateODPRequest) (*dto.ODPResponse, error) {
	odp := req.ToDomain()
	if err := validatePorts(odp.Ports); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireODC(ctx, odp.ODCID); err != nil {
			return err
		}
		return s.odpRepo.Create(ctx, odp)
	})
	if err != nil {
		s.logger.Errorw("failed to create ODP", "name", odp.Name, "odc_id", odp.ODCID, "error", err)
		return nil, err
	}

	metrics.RecordWrite("odp", "create")
	s.logger.Infow("ODP created", "id", odp.ID, "odc_id", odp.ODCID)
	return dto.ToODPResponse(odp), nil
}

func (s *Service) UpdateODP(ctx context.Context, id uint, req dto.UpdateODPRequest) (*dto.ODPResponse, error) {
	var updated *network.ODP
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.odpRepo.GetByID(ctx, id)
		if err != nil {
			return translateError(err)
		}

		if odcID, ok := req.ODCID.Get(); ok && odcID != current.ODCID {
			if err := s.requireODC(ctx, odcID); err != nil {
				return err
			}
		}
		if req.PortsChanged() {
			if err := validatePorts(req.MergedPorts(current.Ports)); err != nil {
				return err
			}
		}

		if changes := req.Changes(); len(changes) > 0 {
			if err := s.odpRepo.Update(ctx, id, changes); err != nil {
				return translateError(err)
			}
		}

		updated, err = s.odpRepo.GetByID(ctx, id)
		return translateError(err)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite("odp", "update")
	s.logger.Infow("ODP updated", "id", id)
	return dto.ToODPResponse(updated), nil
}

// DeleteODP removes an ODP with no customers attached.
func (s *Service) DeleteODP(ctx context.Context, id uint) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.odpRepo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return translateError(network.ErrODPNotFound)
		}

		customers, err := s.customerRepo.CountByODP(ctx, id)
		if err != nil {
			return err
		}
		if customers > 0 {
			s.logger.Warnw("ODP delete blocked by attached customers", "id", id, "customers", customers)
			return errors.NewConflictError(fmt.Sprintf("Cannot delete ODP: %d customer(s) still attached", customers))
		}

		return translateError(s.odpRepo.Delete(ctx, id))
	})
	if err != nil {
		return err
	}

	metrics.RecordWrite("odp", "delete")
	s.logger.Infow("ODP deleted", "id", id)
	return nil
}

// ListODPCustomers returns the customers connected to an ODP.
func (s *Service) ListODPCustomers(ctx context.Context, id uint, page query.Page) ([]*customerdto.CustomerResponse, error) {
	exists, err := s.odpRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, translateError(network.ErrODPNotFound)
	}

	list, err := s.customerRepo.List(ctx, customer.Filter{ODPID: &id}, page)
	if err != nil {
		s.logger.Errorw("failed to list ODP customers", "odp_id", id, "error", err)
		return nil, err
	}
	return customerdto.ToCustomerResponses(list), nil
}

func (s *Service) requireODC(ctx context.Context, id uint) error {
	exists, err := s.odcRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return translateError(network.ErrODCNotFound)
	}
	return nil
}
