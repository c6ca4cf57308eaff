package delivery_intake

import (
	"github.com/AlekSi/pointer"

	"dispatch/internal/entities"
)

// intakeEvent carries the same field names the dashboard speaks, so upstream
// producers can publish the exact document they would otherwise push over the
// socket.
type intakeEvent struct {
	Nome            string             `json:"nome"`
	Status          string             `json:"status"`
	Telefone        string             `json:"telefone"`
	Cidade          string             `json:"cidade"`
	Bairro          string             `json:"bairro"`
	Rua             string             `json:"rua"`
	Numero          string             `json:"numero"`
	Coordenadas     *intakeCoordinates `json:"coordenadas"`
	Dia             []int64            `json:"dia"`
	Valor           string             `json:"valor"`
	Pagamento       string             `json:"pagamento"`
	StatusPagamento string             `json:"statusPagamento"`
	Entregador      string             `json:"entregador"`
	Volume          string             `json:"volume"`
	Observacoes     string             `json:"observacoes"`
	Horario         []int64            `json:"horario"`
	StatusMensagem  string             `json:"statusMensagem"`
}

type intakeCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (e intakeEvent) toModify() entities.DeliveryModify {
	modify := entities.DeliveryModify{
		DateMarker:    e.Dia,
		Name:          pointer.To(e.Nome),
		Status:        pointer.To(e.Status),
		Phone:         pointer.To(e.Telefone),
		City:          pointer.To(e.Cidade),
		District:      pointer.To(e.Bairro),
		Street:        pointer.To(e.Rua),
		Number:        pointer.To(e.Numero),
		Value:         pointer.To(e.Valor),
		Payment:       pointer.To(e.Pagamento),
		PaymentStatus: pointer.To(e.StatusPagamento),
		Courier:       pointer.To(e.Entregador),
		Volume:        pointer.To(e.Volume),
		Notes:         pointer.To(e.Observacoes),
		TimeMarker:    e.Horario,
		StatusMessage: pointer.To(e.StatusMensagem),
	}

	if e.Coordenadas != nil {
		modify.Coordinates = &entities.Coordinates{
			Latitude:  e.Coordenadas.Latitude,
			Longitude: e.Coordenadas.Longitude,
		}
	}

	return modify
}
