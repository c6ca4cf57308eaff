package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dispatch/internal/entities"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "whatsapp-bridge"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway is the HTTP call-through to the WhatsApp bridge sidecar that owns
// the actual messaging session.
type Gateway struct {
	client  doer
	baseURL string
	retrier retrier
}

func New(client doer, baseURL string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) Initialize(ctx context.Context) error {
	err := g.call(ctx, http.MethodPost, "/session/start", "Initialize", nil, nil)
	if err != nil {
		var statusErr *bridgeStatusError
		// The bridge answers 409 when a session is already running.
		if errors.As(err, &statusErr) && statusErr.code == http.StatusConflict {
			return nil
		}
		return fmt.Errorf("gateway whatsapp, initialize session: %w", err)
	}
	return nil
}

func (g *Gateway) Session(ctx context.Context) (*entities.RelaySession, error) {
	var resp sessionResponse
	err := g.call(ctx, http.MethodGet, "/session/status", "Session", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway whatsapp, session status: %w", err)
	}

	return &entities.RelaySession{
		State: toRelayState(resp.State),
		QR:    resp.QR,
	}, nil
}

func (g *Gateway) ForceRepairing(ctx context.Context) error {
	err := g.call(ctx, http.MethodPost, "/session/restart", "ForceRepairing", nil, nil)
	if err != nil {
		return fmt.Errorf("gateway whatsapp, restart session: %w", err)
	}
	return nil
}

// Send delivers text to a contact. A malformed contact or an unauthenticated
// bridge session yields a nil receipt with no error: both are expected
// outcomes the caller reports back as a failed send, not as a fault.
func (g *Gateway) Send(ctx context.Context, address, text string) (*entities.RelayReceipt, error) {
	formatted, ok := FormatAddress(address)
	if !ok {
		return nil, nil
	}

	var resp sendResponse
	err := g.call(ctx, http.MethodPost, "/messages", "Send", sendRequest{Address: formatted, Text: text}, &resp)
	if err != nil {
		var statusErr *bridgeStatusError
		if errors.As(err, &statusErr) {
			switch statusErr.code {
			case http.StatusUnauthorized, http.StatusForbidden, http.StatusConflict, http.StatusUnprocessableEntity:
				return nil, nil
			}
		}
		return nil, fmt.Errorf("gateway whatsapp, send message: %w", err)
	}

	return &entities.RelayReceipt{MessageID: resp.MessageID}, nil
}

func (g *Gateway) call(ctx context.Context, method, path, methodLabel string, reqBody, respBody any) error {
	var payload []byte
	if reqBody != nil {
		var err error
		payload, err = json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++

		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
		if err != nil {
			return err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &bridgeStatusError{code: resp.StatusCode}
		}

		if respBody != nil {
			if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
		}
		return nil
	})

	status := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, methodLabel, status).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, methodLabel, status).Inc()
	}

	return err
}

type bridgeStatusError struct {
	code int
}

func (e *bridgeStatusError) Error() string {
	return fmt.Sprintf("bridge returned status %d", e.code)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *bridgeStatusError
	if errors.As(err, &statusErr) {
		return statusErr.code == http.StatusTooManyRequests || statusErr.code >= 500
	}

	// Transport-level failures are worth another attempt.
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func statusLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var statusErr *bridgeStatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	return "transport_error"
}

func toRelayState(state string) entities.RelayState {
	switch s := entities.RelayState(state); s {
	case entities.RelayPairing, entities.RelayReady, entities.RelayDisconnected, entities.RelayAuthFailed:
		return s
	default:
		return entities.RelayDisconnected
	}
}
