package client

import "encoding/json"

// Frame is one transport message in either direction.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type Handler func(data json.RawMessage)

// Router maps inbound event names to handlers. Dispatch is called from
// the transport's read loop, so handlers run sequentially in receipt
// order: the last update for a transaction always wins and no coalescing
// happens.
type Router struct {
	handlers map[string]Handler
	// Unknown, when set, sees events nothing is bound to.
	Unknown func(event string, data json.RawMessage)
}

func NewRouter() *Router {
	return &Router{handlers: make(map[string]Handler)}
}

// Bind registers the handler for an event, replacing any previous one.
func (r *Router) Bind(event string, fn Handler) {
	r.handlers[event] = fn
}

func (r *Router) Dispatch(frame Frame) {
	if fn, ok := r.handlers[frame.Event]; ok {
		fn(frame.Data)
		return
	}
	if r.Unknown != nil {
		r.Unknown(frame.Event, frame.Data)
	}
}
