package hub

import (
	"encoding/json"

	"dispatch/internal/entities"
)

// Wire shapes keep the Portuguese field names the dashboards already speak.

type WireCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type WireCustomer struct {
	ID          int64            `json:"id"`
	Nome        string           `json:"nome"`
	Telefone    string           `json:"telefone"`
	Cidade      string           `json:"cidade"`
	Bairro      string           `json:"bairro"`
	Rua         string           `json:"rua"`
	Numero      string           `json:"numero"`
	Coordenadas *WireCoordinates `json:"coordenadas,omitempty"`
}

type WireDelivery struct {
	ID              int64            `json:"id"`
	Dia             []int64          `json:"dia"`
	Nome            string           `json:"nome"`
	Status          string           `json:"status"`
	Telefone        string           `json:"telefone"`
	Cidade          string           `json:"cidade"`
	Bairro          string           `json:"bairro"`
	Rua             string           `json:"rua"`
	Numero          string           `json:"numero"`
	Coordenadas     *WireCoordinates `json:"coordenadas,omitempty"`
	Valor           string           `json:"valor"`
	Pagamento       string           `json:"pagamento"`
	StatusPagamento string           `json:"statusPagamento"`
	Entregador      string           `json:"entregador"`
	Volume          string           `json:"volume"`
	Observacoes     string           `json:"observacoes"`
	Horario         []int64          `json:"horario,omitempty"`
	StatusMensagem  string           `json:"statusMensagem"`
}

type WireCourier struct {
	ID          int64            `json:"id"`
	Nome        string           `json:"nome"`
	Status      string           `json:"status"`
	UserName    string           `json:"userName"`
	Localizacao *WireCoordinates `json:"localizacao,omitempty"`
}

// Inbound payloads, one tagged shape per command.

type CustomerPayload struct {
	ID          *int64           `json:"id"`
	Nome        *string          `json:"nome"`
	Telefone    *string          `json:"telefone"`
	Cidade      *string          `json:"cidade"`
	Bairro      *string          `json:"bairro"`
	Rua         *string          `json:"rua"`
	Numero      *string          `json:"numero"`
	Coordenadas *WireCoordinates `json:"coordenadas"`
}

// wireDateMarker tolerates malformed "dia" values: dashboards occasionally
// send a string or an object there, and a create must still go through with
// the marker defaulted to today. Anything that is not a numeric array decodes
// to nil.
type wireDateMarker []int64

func (m *wireDateMarker) UnmarshalJSON(data []byte) error {
	var marker []int64
	if err := json.Unmarshal(data, &marker); err != nil {
		*m = nil
		return nil
	}
	*m = marker
	return nil
}

type DeliveryPayload struct {
	ID              *int64           `json:"id"`
	Dia             wireDateMarker   `json:"dia"`
	Nome            *string          `json:"nome"`
	Status          *string          `json:"status"`
	Telefone        *string          `json:"telefone"`
	Cidade          *string          `json:"cidade"`
	Bairro          *string          `json:"bairro"`
	Rua             *string          `json:"rua"`
	Numero          *string          `json:"numero"`
	Coordenadas     *WireCoordinates `json:"coordenadas"`
	Valor           *string          `json:"valor"`
	Pagamento       *string          `json:"pagamento"`
	StatusPagamento *string          `json:"statusPagamento"`
	Entregador      *string          `json:"entregador"`
	Volume          *string          `json:"volume"`
	Observacoes     *string          `json:"observacoes"`
	Horario         []int64          `json:"horario"`
	StatusMensagem  *string          `json:"statusMensagem"`
}

type CourierPayload struct {
	UserName    *string          `json:"userName"`
	Senha       *string          `json:"senha"`
	Nome        *string          `json:"nome"`
	Status      *string          `json:"status"`
	Localizacao *WireCoordinates `json:"localizacao"`
}

type SendMessagePayload struct {
	Contato  *string `json:"contato"`
	Mensagem *string `json:"mensagem"`
}

type AuthFailedResponse struct {
	MensagemServer string `json:"mensagemServer"`
}

type SendMessageResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// RelayStatusResponse always carries isAuthenticated: the dashboards key off
// that boolean and treat the status token as informational.
type RelayStatusResponse struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Status          string `json:"status"`
}

func NewRelayStatusResponse(session *entities.RelaySession) RelayStatusResponse {
	return RelayStatusResponse{
		IsAuthenticated: session.State == entities.RelayReady,
		Status:          session.State.String(),
	}
}

type RelayQRResponse struct {
	QR string `json:"qr"`
}

func wireCoordinates(c *entities.Coordinates) *WireCoordinates {
	if c == nil {
		return nil
	}
	return &WireCoordinates{Latitude: c.Latitude, Longitude: c.Longitude}
}

func domainCoordinates(c *WireCoordinates) *entities.Coordinates {
	if c == nil {
		return nil
	}
	return &entities.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
}

func wireCustomer(c *entities.Customer) WireCustomer {
	return WireCustomer{
		ID:          c.ID,
		Nome:        c.Name,
		Telefone:    c.Phone,
		Cidade:      c.City,
		Bairro:      c.District,
		Rua:         c.Street,
		Numero:      c.Number,
		Coordenadas: wireCoordinates(c.Coordinates),
	}
}

func wireCustomers(customers []entities.Customer) []WireCustomer {
	result := make([]WireCustomer, len(customers))
	for i := range customers {
		result[i] = wireCustomer(&customers[i])
	}
	return result
}

func wireDelivery(d *entities.Delivery) WireDelivery {
	return WireDelivery{
		ID:              d.ID,
		Dia:             d.DateMarker,
		Nome:            d.Name,
		Status:          d.Status,
		Telefone:        d.Phone,
		Cidade:          d.City,
		Bairro:          d.District,
		Rua:             d.Street,
		Numero:          d.Number,
		Coordenadas:     wireCoordinates(d.Coordinates),
		Valor:           d.Value,
		Pagamento:       d.Payment,
		StatusPagamento: d.PaymentStatus,
		Entregador:      d.Courier,
		Volume:          d.Volume,
		Observacoes:     d.Notes,
		Horario:         d.TimeMarker,
		StatusMensagem:  d.StatusMessage,
	}
}

func wireDeliveries(deliveries []entities.Delivery) []WireDelivery {
	result := make([]WireDelivery, len(deliveries))
	for i := range deliveries {
		result[i] = wireDelivery(&deliveries[i])
	}
	return result
}

func wireCourier(c *entities.Courier) WireCourier {
	return WireCourier{
		ID:          c.ID,
		Nome:        c.Name,
		Status:      c.Status.String(),
		UserName:    c.UserName,
		Localizacao: wireCoordinates(c.Location),
	}
}

func wireCouriers(couriers []entities.Courier) []WireCourier {
	result := make([]WireCourier, len(couriers))
	for i := range couriers {
		result[i] = wireCourier(&couriers[i])
	}
	return result
}

func (p *CustomerPayload) toModify() entities.CustomerModify {
	return entities.CustomerModify{
		ID:          p.ID,
		Name:        p.Nome,
		Phone:       p.Telefone,
		City:        p.Cidade,
		District:    p.Bairro,
		Street:      p.Rua,
		Number:      p.Numero,
		Coordinates: domainCoordinates(p.Coordenadas),
	}
}

func (p *DeliveryPayload) toModify() entities.DeliveryModify {
	return entities.DeliveryModify{
		ID:            p.ID,
		DateMarker:    []int64(p.Dia),
		Name:          p.Nome,
		Status:        p.Status,
		Phone:         p.Telefone,
		City:          p.Cidade,
		District:      p.Bairro,
		Street:        p.Rua,
		Number:        p.Numero,
		Coordinates:   domainCoordinates(p.Coordenadas),
		Value:         p.Valor,
		Payment:       p.Pagamento,
		PaymentStatus: p.StatusPagamento,
		Courier:       p.Entregador,
		Volume:        p.Volume,
		Notes:         p.Observacoes,
		TimeMarker:    p.Horario,
		StatusMessage: p.StatusMensagem,
	}
}

func (p *CourierPayload) toModify() entities.CourierModify {
	modify := entities.CourierModify{
		Name:     p.Nome,
		Location: domainCoordinates(p.Localizacao),
	}
	if p.Status != nil {
		status := entities.CourierStatusType(*p.Status)
		modify.Status = &status
	}
	return modify
}
