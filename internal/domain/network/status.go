package network

// Status is the operational state of an OLT, ODC or ODP.
type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusMaintenance Status = "maintenance"
)

// Statuses lists every valid node status.
var Statuses = []Status{StatusActive, StatusInactive, StatusMaintenance}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusMaintenance:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}
