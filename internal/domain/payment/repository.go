package payment

import (
	"context"

	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

// Filter narrows payment listings. Nil fields are not applied.
type Filter struct {
	CustomerID     *uint
	SubscriptionID *uint
	Status         *Status
}

// Repository defines persistence for payments.
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	List(ctx context.Context, filter Filter, page query.Page) ([]*Payment, error)
	// ListDueBefore returns payments with the given status and due_date < before.
	ListDueBefore(ctx context.Context, status Status, before biztime.Date) ([]*Payment, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) error
	Delete(ctx context.Context, id uint) error

	// Summarize counts payments in range, sums paid amounts in range and
	// breaks both down by status.
	Summarize(ctx context.Context, period DateRange) (*Summary, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	CountBySubscription(ctx context.Context, subscriptionID uint) (int64, error)
	CountByCustomer(ctx context.Context, customerID uint) (int64, error)
	// ExistsForSubscriptionDueBetween reports whether a payment for the
	// subscription falls due inside [from, to].
	ExistsForSubscriptionDueBetween(ctx context.Context, subscriptionID uint, from, to biztime.Date) (bool, error)
	// TransitionDueBefore moves every payment in status from with due_date < before to status to.
	TransitionDueBefore(ctx context.Context, from, to Status, before biztime.Date) (int64, error)
}
