// Package subscription models a customer's enrollment in a package.
package subscription

import (
	"time"

	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
)

// Status is the lifecycle state of a subscription.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
	StatusExpired   Status = "expired"
)

// Statuses lists every valid subscription status.
var Statuses = []Status{StatusActive, StatusInactive, StatusSuspended, StatusExpired}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Subscription links a customer to a package for a period. A nil EndDate
// means open-ended.
type Subscription struct {
	ID         uint
	CustomerID uint
	PackageID  uint
	StartDate  biztime.Date
	EndDate    *biztime.Date
	MonthlyFee float64
	Status     Status
	Notes      *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// ExpiresWithin reports whether the subscription is active and ends inside
// [today, today+days], both bounds inclusive.
func (s *Subscription) ExpiresWithin(today biztime.Date, days int) bool {
	if s.Status != StatusActive || s.EndDate == nil {
		return false
	}
	end := *s.EndDate
	return !end.Before(today) && !end.After(today.AddDays(days))
}

// Billable reports whether monthly invoices should be generated.
func (s *Subscription) Billable() bool {
	return s.Status == StatusActive && s.IsActive
}
