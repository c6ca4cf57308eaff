package socket_get

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"dispatch/pkg/logger"
)

type outboundFrame struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// wsSession adapts one websocket connection to the hub's Session contract.
// Emit never blocks the hub: frames queue into a buffered channel drained by
// the write pump, and a peer that cannot keep up loses the connection.
type wsSession struct {
	conn *websocket.Conn
	send chan outboundFrame
	done chan struct{}
	once sync.Once
	log  handlerLogger
}

func (s *wsSession) Emit(event string, payload any) {
	frame := outboundFrame{Event: event, Data: payload}

	select {
	case s.send <- frame:
	case <-s.done:
	default:
		s.log.Warn("slow consumer, dropping connection", logger.NewField("event", event))
		s.close()
	}
}

func (s *wsSession) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case frame := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(frame); err != nil {
				s.close()
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.close()
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *wsSession) close() {
	s.once.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}
