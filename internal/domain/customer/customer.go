// Package customer models subscribers of the network.
package customer

import (
	"time"

	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
)

// Status is the commercial state of a customer.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
	StatusPending   Status = "pending"
)

// Statuses lists every valid customer status.
var Statuses = []Status{StatusActive, StatusInactive, StatusSuspended, StatusPending}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended, StatusPending:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Customer is a subscriber. CustomerID is the external account code printed
// on invoices, distinct from the numeric ID.
type Customer struct {
	ID               uint
	CustomerID       string
	Name             string
	Email            string
	Phone            string
	Address          string
	Latitude         *float64
	Longitude        *float64
	ODPID            *uint
	ODCPort          *int
	PackageID        *uint
	MonthlyFee       float64
	Status           Status
	RegistrationDate biztime.Date
	Notes            *string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// HasCoordinates reports whether the customer can be placed on a map.
func (c *Customer) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}
