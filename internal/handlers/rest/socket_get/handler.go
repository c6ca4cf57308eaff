package socket_get

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"dispatch/internal/hub"
	"dispatch/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 64 << 10
	sendBufferSize = 32
)

type Handler struct {
	log handlerLogger
	hub Hub

	upgrader websocket.Upgrader
}

func New(log handlerLogger, h Hub) *Handler {
	return &Handler{
		log: log.With(),
		hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Dashboards are served from arbitrary local origins.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", logger.NewField("error", err.Error()))
		return
	}

	session := &wsSession{
		conn: conn,
		send: make(chan outboundFrame, sendBufferSize),
		done: make(chan struct{}),
		log:  h.log,
	}

	id := h.hub.Register(session)
	defer func() {
		h.hub.Unregister(session)
		session.close()
	}()

	go session.writePump()
	h.readLoop(r, session, id)
}

func (h *Handler) readLoop(r *http.Request, session *wsSession, id int64) {
	session.conn.SetReadLimit(maxMessageSize)
	_ = session.conn.SetReadDeadline(time.Now().Add(pongWait))
	session.conn.SetPongHandler(func(string) error {
		return session.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := session.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket read failed",
					logger.NewField("session_id", id),
					logger.NewField("error", err.Error()),
				)
			}
			return
		}

		var frame hub.Envelope
		if err := json.Unmarshal(raw, &frame); err != nil {
			h.log.Warn("malformed frame dropped",
				logger.NewField("session_id", id),
				logger.NewField("error", err.Error()),
			)
			continue
		}

		h.hub.Dispatch(r.Context(), session, frame)
	}
}
