package hub

import (
	"context"
	"sync"

	"dispatch/pkg/logger"
)

// Session is one connected observer. Emit must not block the hub: transport
// adapters queue outbound frames and drop the connection themselves when the
// peer cannot keep up.
type Session interface {
	Emit(event string, payload any)
}

// Hub owns every live dashboard connection and decides, per command, whether
// the refreshed state goes back to the requester only or to every session.
type Hub struct {
	deliveries Deliveries
	customers  Customers
	couriers   Couriers
	relay      Relay
	logger     handlerLogger

	mu           sync.RWMutex
	sessions     map[Session]int64
	relaySession Session
	nextID       int64

	commands map[string]command
}

func New(deliveries Deliveries, customers Customers, couriers Couriers, relay Relay, logger handlerLogger) *Hub {
	h := &Hub{
		deliveries: deliveries,
		customers:  customers,
		couriers:   couriers,
		relay:      relay,
		logger:     logger,
		sessions:   make(map[Session]int64),
	}
	h.commands = h.commandTable()
	return h
}

func (h *Hub) Register(s Session) int64 {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.sessions[s] = id
	h.mu.Unlock()

	ConnectedSessions.Inc()
	h.logger.Info("session connected", logger.NewField("session_id", id))
	return id
}

func (h *Hub) Unregister(s Session) {
	h.mu.Lock()
	id, ok := h.sessions[s]
	delete(h.sessions, s)
	if h.relaySession == s {
		h.relaySession = nil
	}
	h.mu.Unlock()

	if !ok {
		return
	}

	ConnectedSessions.Dec()
	h.logger.Info("session disconnected", logger.NewField("session_id", id))
}

// Dispatch routes one inbound frame. Every failure is converted into an error
// envelope for the requester; nothing propagates back to the transport and the
// connection is never closed over a failed command.
func (h *Hub) Dispatch(ctx context.Context, s Session, frame Envelope) {
	cmd, ok := h.commands[frame.Event]
	if !ok {
		UnknownCommandsTotal.Inc()
		h.logger.Warn("unknown command ignored",
			logger.NewField("command", frame.Event),
			logger.NewField("session_id", h.sessionID(s)),
		)
		return
	}

	event, payload, err := cmd.handle(ctx, s, frame.Data)
	if err != nil {
		CommandsTotal.WithLabelValues(frame.Event, "error").Inc()
		h.logger.Error("command failed",
			logger.NewField("command", frame.Event),
			logger.NewField("session_id", h.sessionID(s)),
			logger.NewField("error", err.Error()),
		)
		s.Emit(errorEvent, newErrorEnvelope(cmd.errMessage, err))
		return
	}

	CommandsTotal.WithLabelValues(frame.Event, "ok").Inc()

	if event == "" {
		return
	}

	switch cmd.audience {
	case audienceAll:
		h.broadcast(event, payload)
	default:
		s.Emit(event, payload)
	}
}

func (h *Hub) broadcast(event string, payload any) {
	h.mu.RLock()
	targets := make([]Session, 0, len(h.sessions))
	for s := range h.sessions {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	for _, s := range targets {
		s.Emit(event, payload)
	}
}

func (h *Hub) broadcastExcept(skip Session, event string, payload any) {
	h.mu.RLock()
	targets := make([]Session, 0, len(h.sessions))
	for s := range h.sessions {
		if s == skip {
			continue
		}
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	for _, s := range targets {
		s.Emit(event, payload)
	}
}

// bindRelaySession points the relay-interest handle at s. At most one session
// receives asynchronous relay events; the latest registration wins.
func (h *Hub) bindRelaySession(s Session) {
	h.mu.Lock()
	h.relaySession = s
	h.mu.Unlock()
}

// PushRelayEvent forwards an asynchronous relay event to the session currently
// registered as relay-interested. Reports whether any session was bound.
func (h *Hub) PushRelayEvent(event string, payload any) bool {
	h.mu.RLock()
	s := h.relaySession
	h.mu.RUnlock()

	if s == nil {
		return false
	}
	s.Emit(event, payload)
	return true
}

func (h *Hub) sessionID(s Session) int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sessions[s]
}
