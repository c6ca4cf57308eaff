package hub

import (
	"encoding/json"
	"time"
)

// Envelope is the wire frame for both directions: a named event plus its
// payload. Inbound frames keep Data raw until the command table picks a shape.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

const errorEvent = "error"

type ErrorEnvelope struct {
	Message   string `json:"message"`
	Detalhes  string `json:"detalhes,omitempty"`
	Timestamp string `json:"timestamp"`
}

func newErrorEnvelope(message string, err error) ErrorEnvelope {
	envelope := ErrorEnvelope{
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		envelope.Detalhes = err.Error()
	}
	return envelope
}
