package handlers

import (
	"context"

	customerdto "github.com/fiberdesk/fiberdesk/internal/application/customer/dto"
	networkdto "github.com/fiberdesk/fiberdesk/internal/application/network/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

type oltService interface {
	ListOLTs(ctx context.Context, filter network.Filter, page query.Page) ([]*networkdto.OLTResponse, error)
	GetOLT(ctx context.Context, id uint) (*networkdto.OLTResponse, error)
	CreateOLT(ctx context.Context, req networkdto.CreateOLTRequest) (*networkdto.OLTResponse, error)
	UpdateOLT(ctx context.Context, id uint, req networkdto.UpdateOLTRequest) (*networkdto.OLTResponse, error)
	DeleteOLT(ctx context.Context, id uint) error
	ListOLTODCs(ctx context.Context, id uint, page query.Page) ([]*networkdto.ODCResponse, error)
}

type odcService interface {
	ListODCs(ctx context.Context, filter network.Filter, page query.Page) ([]*networkdto.ODCResponse, error)
	GetODC(ctx context.Context, id uint) (*networkdto.ODCResponse, error)
	CreateODC(ctx context.Context, req networkdto.CreateODCRequest) (*networkdto.ODCResponse, error)
	UpdateODC(ctx context.Context, id uint, req networkdto.UpdateODCRequest) (*networkdto.ODCResponse, error)
	DeleteODC(ctx context.Context, id uint) error
	ListODCODPs(ctx context.Context, id uint, page query.Page) ([]*networkdto.ODPResponse, error)
}

type odpService interface {
	ListODPs(ctx context.Context, filter network.Filter, page query.Page) ([]*networkdto.ODPResponse, error)
	GetODP(ctx context.Context, id uint) (*networkdto.ODPResponse, error)
	CreateODP(ctx context.Context, req networkdto.CreateODPRequest) (*networkdto.ODPResponse, error)
	UpdateODP(ctx context.Context, id uint, req networkdto.UpdateODPRequest) (*networkdto.ODPResponse, error)
	DeleteODP(ctx context.Context, id uint) error
	ListODPCustomers(ctx context.Context, id uint, page query.Page) ([]*customerdto.CustomerResponse, error)
}

type topologyService interface {
	Hierarchy(ctx context.Context) (*networkdto.HierarchyResponse, error)
	Map(ctx context.Context) (*networkdto.MapResponse, error)
}

type networkService interface {
	oltService
	odcService
	odpService
	topologyService
}
