package delivery

import "errors"

var (
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidTimeMarker = errors.New("invalid time marker")

	ErrDeliveryNotFound = errors.New("delivery not found")
)
