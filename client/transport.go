package client

import (
	"encoding/json"
	"net/url"
	"sync"

	"github.com/fasthttp/websocket"
)

// Socket is the opaque realtime channel a session emits through.
// Reconnection and resubscription live in the transport, not here.
type Socket interface {
	Emit(event string, data any) error
	Close() error
}

// WebSocket dials the server's realtime endpoint. The auth token rides
// the query string because browsers cannot set headers on socket
// upgrades, and the server reads the same parameter.
type WebSocket struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func Dial(endpoint, token string) (*WebSocket, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	if token != "" {
		q := u.Query()
		q.Set("token", token)
		u.RawQuery = q.Encode()
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, err
	}
	return &WebSocket{conn: conn}, nil
}

func (s *WebSocket) Emit(event string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(Frame{Event: event, Data: raw})
}

// Listen reads frames until the connection drops, dispatching each to
// the router in receipt order. Malformed frames are skipped.
func (s *WebSocket) Listen(router *Router) error {
	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			return err
		}
		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil || frame.Event == "" {
			continue
		}
		router.Dispatch(frame)
	}
}

func (s *WebSocket) Close() error {
	return s.conn.Close()
}
