package network

import (
	"context"
	"fmt"

	"github.com/fiberdesk/fiberdesk/internal/application/network/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/metrics"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

func (s *Service) ListOLTs(ctx context.Context, filter network.Filter, page query.Page) ([]*dto.OLTResponse, error) {
	list, err := s.oltRepo.List(ctx, filter, page)
	if err != nil {
		s.logger.Errorw("failed to list OLTs", "error", err)
		return nil, err
	}
	return dto.ToOLTResponses(list), nil
}

func (s *Service) GetOLT(ctx context.Context, id uint) (*dto.OLTResponse, error) {
	olt, err := s.oltRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err)
	}
	return dto.ToOLTResponse(olt), nil
}

func (s *Service) CreateOLT(ctx context.Context, req dto.CreateOLTRequest) (*dto.OLTResponse, error) {
	olt := req.ToDomain()
	if err := validatePorts(olt.Ports); err != nil {
		return nil, err
	}

	if err := s.oltRepo.Create(ctx, olt); err != nil {
		s.logger.Errorw("failed to create OLT", "name", olt.Name, "error", err)
		return nil, err
	}

	metrics.RecordWrite("olt", "create")
	s.logger.Infow("OLT created", "id", olt.ID, "name", olt.Name)
	return dto.ToOLTResponse(olt), nil
}

// UpdateOLT applies the supplied fields. Capacity is validated against the
// merged result when either port count changes.
func (s *Service) UpdateOLT(ctx context.Context, id uint, req dto.UpdateOLTRequest) (*dto.OLTResponse, error) {
	var updated *network.OLT
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.oltRepo.GetByID(ctx, id)
		if err != nil {
			return translateError(err)
		}

		if req.PortsChanged() {
			if err := validatePorts(req.MergedPorts(current.Ports)); err != nil {
				return err
			}
		}

		if changes := req.Changes(); len(changes) > 0 {
			if err := s.oltRepo.Update(ctx, id, changes); err != nil {
				return translateError(err)
			}
		}

		updated, err = s.oltRepo.GetByID(ctx, id)
		return translateError(err)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite("olt", "update")
	s.logger.Infow("OLT updated", "id", id)
	return dto.ToOLTResponse(updated), nil
}

// DeleteOLT removes an OLT that feeds no ODCs.
func (s *Service) DeleteOLT(ctx context.Context, id uint) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireOLT(ctx, id); err != nil {
			return err
		}

		odcs, err := s.odcRepo.CountByOLT(ctx, id)
		if err != nil {
			return err
		}
		if odcs > 0 {
			s.logger.Warnw("OLT delete blocked by attached ODCs", "id", id, "odcs", odcs)
			return errors.NewConflictError(fmt.Sprintf("Cannot delete OLT: %d ODC(s) still attached", odcs))
		}

		return translateError(s.oltRepo.Delete(ctx, id))
	})
	if err != nil {
		return err
	}

	metrics.RecordWrite("olt", "delete")
	s.logger.Infow("OLT deleted", "id", id)
	return nil
}

// ListOLTODCs returns the ODCs fed by an OLT, active or not.
func (s *Service) ListOLTODCs(ctx context.Context, id uint, page query.Page) ([]*dto.ODCResponse, error) {
	if err := s.requireOLT(ctx, id); err != nil {
		return nil, err
	}
	return s.ListODCs(ctx, network.Filter{ParentID: &id}, page)
}
