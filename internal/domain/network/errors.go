package network

import "errors"

var (
	// ErrOLTNotFound is returned when an OLT does not exist
	ErrOLTNotFound = errors.New("OLT not found")

	// ErrODCNotFound is returned when an ODC does not exist
	ErrODCNotFound = errors.New("ODC not found")

	// ErrODPNotFound is returned when an ODP does not exist
	ErrODPNotFound = errors.New("ODP not found")

	ErrNegativePorts = errors.New("port counts must not be negative")
	ErrPortsExceeded = errors.New("used_ports cannot exceed total_ports")
)
