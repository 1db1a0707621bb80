package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func frame(event, data string) Frame {
	return Frame{Event: event, Data: json.RawMessage(data)}
}

func TestRouterDispatchReceiptOrder(t *testing.T) {
	r := NewRouter()

	var order []string
	r.Bind("a", func(json.RawMessage) { order = append(order, "a") })
	r.Bind("b", func(json.RawMessage) { order = append(order, "b") })

	r.Dispatch(frame("b", `{}`))
	r.Dispatch(frame("a", `{}`))
	r.Dispatch(frame("b", `{}`))

	assert.Equal(t, []string{"b", "a", "b"}, order)
}

func TestRouterBindReplaces(t *testing.T) {
	r := NewRouter()

	hits := 0
	r.Bind("x", func(json.RawMessage) { hits += 100 })
	r.Bind("x", func(json.RawMessage) { hits++ })

	r.Dispatch(frame("x", `{}`))
	assert.Equal(t, 1, hits)
}

func TestRouterUnknownEvent(t *testing.T) {
	r := NewRouter()

	var unknown []string
	r.Unknown = func(event string, _ json.RawMessage) { unknown = append(unknown, event) }
	r.Bind("known", func(json.RawMessage) {})

	r.Dispatch(frame("known", `{}`))
	r.Dispatch(frame("mystery", `{}`))

	assert.Equal(t, []string{"mystery"}, unknown)
}
