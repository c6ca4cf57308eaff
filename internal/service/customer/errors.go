package customer

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid name")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrConflict         = errors.New("resource already exists")
)
