package customer

import "errors"

var (
	// ErrCustomerNotFound is returned when a customer does not exist
	ErrCustomerNotFound = errors.New("customer not found")
)
