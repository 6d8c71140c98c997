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

func (s *Service) ListODCs(ctx context.Context, filter network.Filter, page query.Page) ([]*dto.ODCResponse, error) {
	list, err := s.odcRepo.List(ctx, filter, page)
	if err != nil {
		s.logger.Errorw("failed to list ODCs", "error", err)
		return nil, err
	}
	return dto.ToODCResponses(list), nil
}

func (s *Service) GetODC(ctx context.Context, id uint) (*dto.ODCResponse, error) {
	odc, err := s.odcRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err)
	}
	return dto.ToODCResponse(odc), nil
}

// CreateODC stores a cabinet under an existing OLT.
func (s *Service) CreateODC(ctx context.Context, req dto.CreateODCRequest) (*dto.ODCResponse, error) {
	odc := req.ToDomain()
	if err := validatePorts(odc.Ports); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireOLT(ctx, odc.OLTID); err != nil {
			return err
		}
		return s.odcRepo.Create(ctx, odc)
	})
	if err != nil {
		s.logger.Errorw("failed to create ODC", "name", odc.Name, "olt_id", odc.OLTID, "error", err)
		return nil, err
	}

	metrics.RecordWrite("odc", "create")
	s.logger.Infow("ODC created", "id", odc.ID, "olt_id", odc.OLTID)
	return dto.ToODCResponse(odc), nil
}

func (s *Service) UpdateODC(ctx context.Context, id uint, req dto.UpdateODCRequest) (*dto.ODCResponse, error) {
	var updated *network.ODC
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.odcRepo.GetByID(ctx, id)
		if err != nil {
			return translateError(err)
		}

		if oltID, ok := req.OLTID.Get(); ok && oltID != current.OLTID {
			if err := s.requireOLT(ctx, oltID); err != nil {
				return err
			}
		}
		if req.PortsChanged() {
			if err := validatePorts(req.MergedPorts(current.Ports)); err != nil {
				return err
			}
		}

		if changes := req.Changes(); len(changes) > 0 {
			if err := s.odcRepo.Update(ctx, id, changes); err != nil {
				return translateError(err)
			}
		}

		updated, err = s.odcRepo.GetByID(ctx, id)
		return translateError(err)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite("odc", "update")
	s.logger.Infow("ODC updated", "id", id)
	return dto.ToODCResponse(updated), nil
}

// DeleteODC removes an ODC that feeds no ODPs.
func (s *Service) DeleteODC(ctx context.Context, id uint) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireODC(ctx, id); err != nil {
			return err
		}

		odps, err := s.odpRepo.CountByODC(ctx, id)
		if err != nil {
			return err
		}
		if odps > 0 {
			s.logger.Warnw("ODC delete blocked by attached ODPs", "id", id, "odps", odps)
			return errors.NewConflictError(fmt.Sprintf("Cannot delete ODC: %d ODP(s) still attached", odps))
		}

		return translateError(s.odcRepo.Delete(ctx, id))
	})
	if err != nil {
		return err
	}

	metrics.RecordWrite("odc", "delete")
	s.logger.Infow("ODC deleted", "id", id)
	return nil
}

// ListODCODPs returns the ODPs fed by an ODC, active or not.
func (s *Service) ListODCODPs(ctx context.Context, id uint, page query.Page) ([]*dto.ODPResponse, error) {
	if err := s.requireODC(ctx, id); err != nil {
		return nil, err
	}
	return s.ListODPs(ctx, network.Filter{ParentID: &id}, page)
}

func (s *Service) requireOLT(ctx context.Context, id uint) error {
	exists, err := s.oltRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return translateError(network.ErrOLTNotFound)
	}
	return nil
}
