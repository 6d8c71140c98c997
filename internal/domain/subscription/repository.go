package subscription

import (
	"context"

	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

// Filter narrows subscription listings. Nil fields are not applied.
type Filter struct {
	CustomerID *uint
	Status     *Status
}

// Repository defines persistence for subscriptions.
type Repository interface {
	Create(ctx context.Context, s *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	List(ctx context.Context, filter Filter, page query.Page) ([]*Subscription, error)
	ListByStatus(ctx context.Context, status Status) ([]*Subscription, error)
	// ListEndingBetween returns subscriptions with the given status whose
	// end_date lies in [from, to], both inclusive.
	ListEndingBetween(ctx context.Context, status Status, from, to biztime.Date) ([]*Subscription, error)
	// ListBillable returns subscriptions with status=active and is_active=true.
	ListBillable(ctx context.Context) ([]*Subscription, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	CountByCustomer(ctx context.Context, customerID uint) (int64, error)
	CountByPackage(ctx context.Context, packageID uint) (int64, error)
}
