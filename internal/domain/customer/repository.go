package customer

import (
	"context"

	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

// Filter narrows customer listings. Nil fields are not applied.
type Filter struct {
	Search    string
	Status    *Status
	ODPID     *uint
	PackageID *uint
	IsActive  *bool
}

// Repository defines persistence for customers.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uint) (*Customer, error)
	GetByCustomerID(ctx context.Context, customerID string) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	List(ctx context.Context, filter Filter, page query.Page) ([]*Customer, error)
	// ListWithCoordinates returns customers having both latitude and longitude.
	ListWithCoordinates(ctx context.Context) ([]*Customer, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)

	// CountByStatus returns status→count for every status present.
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	CountActive(ctx context.Context) (int64, error)
	// CountByODPIDs returns odp_id→customer count for the given ODPs.
	CountByODPIDs(ctx context.Context, odpIDs []uint) (map[uint]int64, error)
	CountByODP(ctx context.Context, odpID uint) (int64, error)
	CountByPackage(ctx context.Context, packageID uint) (int64, error)
}
