package network

import (
	"context"

	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

// Filter narrows node listings. Nil fields are not applied.
type Filter struct {
	Search   string
	Status   *Status
	ParentID *uint
	IsActive *bool
}

// OLTRepository defines persistence for OLTs.
type OLTRepository interface {
	Create(ctx context.Context, olt *OLT) error
	GetByID(ctx context.Context, id uint) (*OLT, error)
	List(ctx context.Context, filter Filter, page query.Page) ([]*OLT, error)
	// ListActive returns every OLT with is_active=true in id order.
	ListActive(ctx context.Context) ([]*OLT, error)
	ListWithCoordinates(ctx context.Context) ([]*OLT, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	CountByActive(ctx context.Context) (active int64, inactive int64, err error)
}

// ODCRepository defines persistence for ODCs.
type ODCRepository interface {
	Create(ctx context.Context, odc *ODC) error
	GetByID(ctx context.Context, id uint) (*ODC, error)
	List(ctx context.Context, filter Filter, page query.Page) ([]*ODC, error)
	// ListActiveByOLTIDs returns active ODCs under any of the given OLTs in id order.
	ListActiveByOLTIDs(ctx context.Context, oltIDs []uint) ([]*ODC, error)
	ListWithCoordinates(ctx context.Context) ([]*ODC, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	CountByOLT(ctx context.Context, oltID uint) (int64, error)
	CountByActive(ctx context.Context) (active int64, inactive int64, err error)
}

// ODPRepository defines persistence for ODPs.
type ODPRepository interface {
	Create(ctx context.Context, odp *ODP) error
	GetByID(ctx context.Context, id uint) (*ODP, error)
	List(ctx context.Context, filter Filter, page query.Page) ([]*ODP, error)
	// ListActiveByODCIDs returns active ODPs under any of the given ODCs in id order.
	ListActiveByODCIDs(ctx context.Context, odcIDs []uint) ([]*ODP, error)
	ListWithCoordinates(ctx context.Context) ([]*ODP, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	CountByODC(ctx context.Context, odcID uint) (int64, error)
	CountByActive(ctx context.Context) (active int64, inactive int64, err error)
}
