package hub

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"dispatch/internal/service/courier"
	"dispatch/pkg/logger"
)

// Wire command and event names, kept verbatim from the dashboard protocol.
const (
	CommandTodayDeliveries = "Entregas do Dia"
	CommandListCustomers   = "Buscar Clientes"
	CommandListCouriers    = "Buscar Usuarios"
	CommandCreateDelivery  = "Adicionar Entrega"
	CommandUpdateDelivery  = "Atualizar Entrega"
	CommandUpsertCustomer  = "Atualizar Cliente"
	CommandAuthenticate    = "Autenticar Usuario"
	CommandLocateCourier   = "Localizar Entregador"
	CommandDeliveryReport  = "Relatorio Entregas"
	CommandRelayLogin      = "whatsapp-login"
	CommandRelayStatus     = "verificar-whatsapp-status"
	CommandRelayForceQR    = "forcar-whatsapp-qr"
	CommandSendMessage     = "Enviar Mensagem"
	CommandMessage         = "message"
	CommandBroadcast       = "broadcast"

	EventCourierBroadcast    = "Atualizando todos entregadores"
	EventSendMessageResponse = "Enviar Mensagem Resposta"
	EventRelayStatus         = "whatsapp-status"
	EventRelayQR             = "whatsapp-qr"
	EventResponse            = "response"
	EventBroadcastSent       = "broadcastSent"
)

const (
	authFailedMessage      = "Não foi possível identificar o usuário"
	authInfraFailedMessage = "Erro ao autenticar usuário"
)

type audience int

const (
	audienceRequester audience = iota
	audienceAll
)

// command is one row of the dispatch policy: who hears a success, what the
// error envelope says on failure, and the handler that does the work. A
// handler returning an empty event name has already emitted everything itself.
type command struct {
	audience   audience
	errMessage string
	handle     func(ctx context.Context, s Session, data json.RawMessage) (string, any, error)
}

func (h *Hub) commandTable() map[string]command {
	return map[string]command{
		CommandTodayDeliveries: {
			audience:   audienceRequester,
			errMessage: "Erro ao buscar entregas",
			handle:     h.handleTodayDeliveries,
		},
		CommandListCustomers: {
			audience:   audienceRequester,
			errMessage: "Erro ao buscar clientes",
			handle:     h.handleListCustomers,
		},
		CommandListCouriers: {
			audience:   audienceRequester,
			errMessage: "Erro ao buscar usuários",
			handle:     h.handleListCouriers,
		},
		CommandCreateDelivery: {
			audience:   audienceAll,
			errMessage: "Erro ao adicionar entrega",
			handle:     h.handleCreateDelivery,
		},
		CommandUpdateDelivery: {
			audience:   audienceAll,
			errMessage: "Erro ao atualizar entrega",
			handle:     h.handleUpdateDelivery,
		},
		CommandUpsertCustomer: {
			audience:   audienceRequester,
			errMessage: "Erro ao atualizar cliente",
			handle:     h.handleUpsertCustomer,
		},
		CommandAuthenticate: {
			audience:   audienceRequester,
			errMessage: "Erro ao autenticar usuário",
			handle:     h.handleAuthenticate,
		},
		CommandLocateCourier: {
			audience:   audienceAll,
			errMessage: "Erro ao localizar entregador",
			handle:     h.handleLocateCourier,
		},
		CommandDeliveryReport: {
			audience:   audienceRequester,
			errMessage: "Erro ao gerar relatório de entregas",
			handle:     h.handleDeliveryReport,
		},
		CommandRelayLogin: {
			audience:   audienceRequester,
			errMessage: "Erro ao iniciar sessão do WhatsApp",
			handle:     h.handleRelayLogin,
		},
		CommandRelayStatus: {
			audience:   audienceRequester,
			errMessage: "Erro ao verificar status do WhatsApp",
			handle:     h.handleRelayStatusCheck,
		},
		CommandRelayForceQR: {
			audience:   audienceRequester,
			errMessage: "Erro ao gerar novo QR do WhatsApp",
			handle:     h.handleRelayForceQR,
		},
		CommandSendMessage: {
			audience:   audienceRequester,
			errMessage: "Erro ao enviar mensagem",
			handle:     h.handleSendMessage,
		},
		CommandMessage: {
			audience:   audienceRequester,
			errMessage: "Erro ao processar mensagem",
			handle:     h.handleMessage,
		},
		CommandBroadcast: {
			audience:   audienceRequester,
			errMessage: "Erro ao processar broadcast",
			handle:     h.handleBroadcast,
		},
	}
}

func decodePayload(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return errEmptyPayload
	}
	return json.Unmarshal(data, v)
}

func (h *Hub) handleTodayDeliveries(ctx context.Context, _ Session, _ json.RawMessage) (string, any, error) {
	deliveries, err := h.deliveries.GetTodayDeliveries(ctx)
	if err != nil {
		return "", nil, err
	}
	return CommandTodayDeliveries, wireDeliveries(deliveries), nil
}

func (h *Hub) handleListCustomers(ctx context.Context, _ Session, _ json.RawMessage) (string, any, error) {
	customers, err := h.customers.GetCustomers(ctx)
	if err != nil {
		return "", nil, err
	}
	return CommandListCustomers, wireCustomers(customers), nil
}

func (h *Hub) handleListCouriers(ctx context.Context, _ Session, _ json.RawMessage) (string, any, error) {
	couriers, err := h.couriers.GetCouriers(ctx)
	if err != nil {
		return "", nil, err
	}
	return CommandListCouriers, wireCouriers(couriers), nil
}

func (h *Hub) handleCreateDelivery(ctx context.Context, _ Session, data json.RawMessage) (string, any, error) {
	var payload DeliveryPayload
	if err := decodePayload(data, &payload); err != nil {
		return "", nil, err
	}

	if _, err := h.deliveries.CreateDelivery(ctx, payload.toModify()); err != nil {
		return "", nil, err
	}

	deliveries, err := h.deliveries.GetTodayDeliveries(ctx)
	if err != nil {
		return "", nil, err
	}
	return CommandTodayDeliveries, wireDeliveries(deliveries), nil
}

func (h *Hub) handleUpdateDelivery(ctx context.Context, _ Session, data json.RawMessage) (string, any, error) {
	var payload DeliveryPayload
	if err := decodePayload(data, &payload); err != nil {
		return "", nil, err
	}
	if payload.ID == nil {
		return "", nil, errMissingDeliveryID
	}

	if _, err := h.deliveries.UpdateDelivery(ctx, payload.toModify()); err != nil {
		return "", nil, err
	}

	deliveries, err := h.deliveries.GetTodayDeliveries(ctx)
	if err != nil {
		return "", nil, err
	}
	return CommandTodayDeliveries, wireDeliveries(deliveries), nil
}

func (h *Hub) handleUpsertCustomer(ctx context.Context, _ Session, data json.RawMessage) (string, any, error) {
	var payload CustomerPayload
	if err := decodePayload(data, &payload); err != nil {
		return "", nil, err
	}
	if payload.Nome == nil || strings.TrimSpace(*payload.Nome) == "" {
		return "", nil, errMissingCustomerName
	}

	if _, err := h.customers.UpsertCustomerByName(ctx, payload.toModify()); err != nil {
		return "", nil, err
	}

	customers, err := h.customers.GetCustomers(ctx)
	if err != nil {
		return "", nil, err
	}
	return CommandUpsertCustomer, wireCustomers(customers), nil
}

// handleAuthenticate never distinguishes "unknown user" from "bad credentials"
// toward the caller: both come back as a success-shaped mensagemServer reply.
func (h *Hub) handleAuthenticate(ctx context.Context, _ Session, data json.RawMessage) (string, any, error) {
	var payload CourierPayload
	if err := decodePayload(data, &payload); err != nil {
		return "", nil, err
	}
	if payload.UserName == nil {
		return CommandAuthenticate, AuthFailedResponse{MensagemServer: authFailedMessage}, nil
	}

	password := ""
	if payload.Senha != nil {
		password = *payload.Senha
	}

	matched, err := h.couriers.Authenticate(ctx, *payload.UserName, password)
	if err != nil {
		if errors.Is(err, courier.ErrCourierNotFound) ||
			errors.Is(err, courier.ErrInvalidCredentials) ||
			errors.Is(err, courier.ErrInvalidUserName) {
			return CommandAuthenticate, AuthFailedResponse{MensagemServer: authFailedMessage}, nil
		}
		// Infrastructure failures answer on the same event too: the login
		// screen only listens for Autenticar Usuario.
		h.logger.Error("authenticate failed", logger.NewField("error", err.Error()))
		return CommandAuthenticate, AuthFailedResponse{MensagemServer: authInfraFailedMessage}, nil
	}

	return CommandAuthenticate, wireCourier(matched), nil
}

func (h *Hub) handleLocateCourier(ctx context.Context, _ Session, data json.RawMessage) (string, any, error) {
	var payload CourierPayload
	if err := decodePayload(data, &payload); err != nil {
		return "", nil, err
	}
	if payload.UserName == nil {
		return "", nil, errMissingUserName
	}

	if _, err := h.couriers.UpdateCourierByUserName(ctx, *payload.UserName, payload.toModify()); err != nil {
		return "", nil, err
	}

	couriers, err := h.couriers.GetCouriers(ctx)
	if err != nil {
		return "", nil, err
	}
	return EventCourierBroadcast, wireCouriers(couriers), nil
}

func (h *Hub) handleDeliveryReport(ctx context.Context, _ Session, _ json.RawMessage) (string, any, error) {
	deliveries, err := h.deliveries.GetAllDeliveries(ctx)
	if err != nil {
		return "", nil, err
	}
	return CommandDeliveryReport, wireDeliveries(deliveries), nil
}

func (h *Hub) handleRelayLogin(ctx context.Context, s Session, _ json.RawMessage) (string, any, error) {
	h.bindRelaySession(s)

	if err := h.relay.Initialize(ctx); err != nil {
		return "", nil, err
	}
	return h.emitRelaySession(ctx, s)
}

func (h *Hub) handleRelayStatusCheck(ctx context.Context, s Session, _ json.RawMessage) (string, any, error) {
	h.bindRelaySession(s)
	return h.emitRelaySession(ctx, s)
}

func (h *Hub) handleRelayForceQR(ctx context.Context, s Session, _ json.RawMessage) (string, any, error) {
	h.bindRelaySession(s)

	if err := h.relay.ForceRepairing(ctx); err != nil {
		return "", nil, err
	}
	return h.emitRelaySession(ctx, s)
}

func (h *Hub) emitRelaySession(ctx context.Context, s Session) (string, any, error) {
	session, err := h.relay.Session(ctx)
	if err != nil {
		return "", nil, err
	}

	s.Emit(EventRelayStatus, NewRelayStatusResponse(session))
	if session.QR != "" {
		s.Emit(EventRelayQR, RelayQRResponse{QR: session.QR})
	}
	return "", nil, nil
}

// handleSendMessage replies success-shaped even for expected failures: a
// missing field, an unpaired relay session, or a malformed address all come
// back as {success: false} rather than an error envelope.
func (h *Hub) handleSendMessage(ctx context.Context, _ Session, data json.RawMessage) (string, any, error) {
	var payload SendMessagePayload
	if err := decodePayload(data, &payload); err != nil {
		return "", nil, err
	}

	if payload.Contato == nil || strings.TrimSpace(*payload.Contato) == "" ||
		payload.Mensagem == nil || strings.TrimSpace(*payload.Mensagem) == "" {
		return EventSendMessageResponse, SendMessageResponse{
			Success: false,
			Error:   "contato e mensagem são obrigatórios",
		}, nil
	}

	receipt, err := h.relay.Send(ctx, *payload.Contato, *payload.Mensagem)
	if err != nil {
		return "", nil, err
	}
	if receipt == nil {
		return EventSendMessageResponse, SendMessageResponse{
			Success: false,
			Error:   "sessão do WhatsApp não autenticada ou contato inválido",
		}, nil
	}

	return EventSendMessageResponse, SendMessageResponse{Success: true}, nil
}

func (h *Hub) handleMessage(_ context.Context, _ Session, data json.RawMessage) (string, any, error) {
	var payload any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			return "", nil, err
		}
	}
	return EventResponse, payload, nil
}

func (h *Hub) handleBroadcast(_ context.Context, s Session, data json.RawMessage) (string, any, error) {
	var payload any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			return "", nil, err
		}
	}

	h.broadcastExcept(s, CommandBroadcast, payload)
	return EventBroadcastSent, payload, nil
}
