package hub

import "errors"

var (
	errEmptyPayload        = errors.New("payload vazio")
	errMissingDeliveryID   = errors.New("id da entrega é obrigatório")
	errMissingCustomerName = errors.New("nome do cliente é obrigatório")
	errMissingUserName     = errors.New("userName é obrigatório")
)
