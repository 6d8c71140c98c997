// Package payment models invoices raised against subscriptions.
package payment

import (
	"time"

	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
)

// Status is the settlement state of a payment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every valid payment status.
var Statuses = []Status{StatusPending, StatusPaid, StatusOverdue, StatusCancelled}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Payment is one billing record for a subscription.
type Payment struct {
	ID              uint
	CustomerID      uint
	SubscriptionID  uint
	Amount          float64
	PaymentDate     biztime.Date
	DueDate         biztime.Date
	Status          Status
	PaymentMethod   *string
	ReferenceNumber *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// IsOverdueOn reports whether the payment is flagged overdue and its due date
// lies strictly before today.
func (p *Payment) IsOverdueOn(today biztime.Date) bool {
	return p.Status == StatusOverdue && p.DueDate.Before(today)
}

// CanBeSettled reports whether the payment may transition to paid.
func (p *Payment) CanBeSettled() bool {
	return p.Status == StatusPending || p.Status == StatusOverdue
}

// StatusTotal is one row of a summary breakdown.
type StatusTotal struct {
	Status      Status
	Count       int64
	TotalAmount float64
}

// Summary aggregates payments over an optional payment_date range.
type Summary struct {
	TotalPayments   int64
	TotalAmount     float64
	StatusBreakdown []StatusTotal
}

// DateRange bounds payment_date inclusively. Nil bounds are open.
type DateRange struct {
	From *biztime.Date
	To   *biztime.Date
}
