// Package network provides the application service for the optical
// distribution tree: OLT, ODC and ODP management, the active hierarchy and
// the network map.
package network

import (
	stderrors "errors"

	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/shared/db"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
)

type Service struct {
	oltRepo      network.OLTRepository
	odcRepo      network.ODCRepository
	odpRepo      network.ODPRepository
	customerRepo customer.Repository
	txManager    *db.TransactionManager
	logger       logger.Interface
}

func NewService(
	oltRepo network.OLTRepository,
	odcRepo network.ODCRepository,
	odpRepo network.ODPRepository,
	customerRepo customer.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *Service {
	return &Service{
		oltRepo:      oltRepo,
		odcRepo:      odcRepo,
		odpRepo:      odpRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// translateError maps domain errors to application errors. Anything it does
// not recognize is returned unchanged and surfaces as an internal error.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, network.ErrOLTNotFound):
		return errors.NewNotFoundError("OLT not found")
	case stderrors.Is(err, network.ErrODCNotFound):
		return errors.NewNotFoundError("ODC not found")
	case stderrors.Is(err, network.ErrODPNotFound):
		return errors.NewNotFoundError("ODP not found")
	case stderrors.Is(err, network.ErrPortsExceeded), stderrors.Is(err, network.ErrNegativePorts):
		return errors.NewValidationError(err.Error())
	default:
		return err
	}
}

func validatePorts(ports network.Ports) error {
	return translateError(ports.Validate())
}
