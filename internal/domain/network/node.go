// Package network models the passive optical distribution tree:
// OLT → ODC → ODP, with customers attached to ODPs.
package network

import (
	"time"
)

// Ports carries the capacity fields shared by every node kind.
type Ports struct {
	Total int
	Used  int
}

// Free returns the number of unused ports, never negative.
func (p Ports) Free() int {
	if p.Used >= p.Total {
		return 0
	}
	return p.Total - p.Used
}

// Validate reports whether usage fits within capacity.
func (p Ports) Validate() error {
	if p.Total < 0 || p.Used < 0 {
		return ErrNegativePorts
	}
	if p.Used > p.Total {
		return ErrPortsExceeded
	}
	return nil
}

// OLT is an optical line terminal, the root of the tree.
type OLT struct {
	ID          uint
	Name        string
	Location    string
	Latitude    *float64
	Longitude   *float64
	Brand       *string
	Model       *string
	Ports       Ports
	IPAddress   *string
	Status      Status
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// ODC is an optical distribution cabinet fed by one OLT.
type ODC struct {
	ID          uint
	Name        string
	Location    string
	Latitude    *float64
	Longitude   *float64
	OLTID       uint
	Ports       Ports
	Type        *string
	Status      Status
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// ODP is an optical distribution point fed by one ODC. Customers connect here.
type ODP struct {
	ID          uint
	Name        string
	Location    string
	Latitude    *float64
	Longitude   *float64
	ODCID       uint
	Ports       Ports
	Type        *string
	Status      Status
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
