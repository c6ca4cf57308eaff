package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidUserName       = errors.New("invalid user name")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCourierNotFound    = errors.New("courier not found")
	ErrConflict           = errors.New("resource already exists")
)
