// Package packages models the sellable service tiers (speed/price bundles).
package packages

import (
	"context"
	"errors"
	"time"

	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

// ErrPackageNotFound is returned when a package does not exist
var ErrPackageNotFound = errors.New("package not found")

// Package is a service tier. Features holds markdown.
type Package struct {
	ID          uint
	Name        string
	Description *string
	Speed       *string
	Price       float64
	Features    *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Filter narrows package listings. Nil fields are not applied.
type Filter struct {
	Search   string
	IsActive *bool
}

// Repository defines persistence for packages.
type Repository interface {
	Create(ctx context.Context, p *Package) error
	GetByID(ctx context.Context, id uint) (*Package, error)
	List(ctx context.Context, filter Filter, page query.Page) ([]*Package, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	CountByActive(ctx context.Context) (active int64, total int64, err error)
}
