package relay_status

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/hub"
	"dispatch/pkg/logger"
)

type Relay interface {
	Session(ctx context.Context) (*entities.RelaySession, error)
}

type Hub interface {
	PushRelayEvent(event string, payload any) bool
}

// RelayStatus polls the messaging bridge and forwards session transitions to
// whichever connection is currently registered as relay-interested. Only
// changes are pushed; a stable session stays quiet.
type RelayStatus struct {
	log      logger.Logger
	relay    Relay
	hub      Hub
	interval time.Duration

	lastState entities.RelayState
	lastQR    string
}

func NewRelayStatus(log logger.Logger, relay Relay, h Hub, interval time.Duration) *RelayStatus {
	return &RelayStatus{
		log:      log,
		relay:    relay,
		hub:      h,
		interval: interval,
	}
}

func (r *RelayStatus) TTL() time.Duration {
	return r.interval
}

func (r *RelayStatus) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	session, err := r.relay.Session(ctxWithTimeout)
	if err != nil {
		// The bridge is an optional sidecar: an unreachable bridge must not
		// take the dispatch hub down with it.
		r.log.With(
			logger.NewField("error", err),
		).Warn("relay session poll failed")
		return nil
	}

	if session.State != r.lastState {
		r.lastState = session.State
		delivered := r.hub.PushRelayEvent(hub.EventRelayStatus, hub.NewRelayStatusResponse(session))
		r.log.With(
			logger.NewField("state", session.State.String()),
			logger.NewField("delivered", delivered),
		).Info("relay session transition")
	}

	if session.QR != "" && session.QR != r.lastQR {
		r.lastQR = session.QR
		r.hub.PushRelayEvent(hub.EventRelayQR, hub.RelayQRResponse{QR: session.QR})
	}

	return nil
}

func (r *RelayStatus) Info() string {
	return "relay status watcher"
}
