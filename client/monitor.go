package client

import (
	"encoding/json"
	"fmt"
)

// MonitorSession drives the read-only lobby board. Broadcasts only tell
// it that something changed; the actual state always comes from a fresh
// snapshot pull.
type MonitorSession struct {
	socket Socket

	// OnChanged fires on monitor_updated; the view re-pulls the
	// snapshot and room/cashier status endpoints.
	OnChanged func()
	// Announce receives one-line call-outs for the per-phase events,
	// e.g. for an overhead display or audio cue.
	Announce func(message string)
}

type monitorCallout struct {
	Code      string `json:"code"`
	Therapist string `json:"therapist"`
	Room      string `json:"room"`
	Cashier   string `json:"cashier"`
	Counter   string `json:"counter"`
}

func NewMonitorSession(socket Socket, router *Router) *MonitorSession {
	s := &MonitorSession{socket: socket}

	router.Bind("monitor_updated", func(json.RawMessage) {
		if s.OnChanged != nil {
			s.OnChanged()
		}
	})

	announce := func(format func(monitorCallout) string) Handler {
		return func(data json.RawMessage) {
			if s.Announce == nil {
				return
			}
			var c monitorCallout
			if err := json.Unmarshal(data, &c); err != nil || c.Code == "" {
				return
			}
			s.Announce(format(c))
		}
	}

	router.Bind("monitor_customer_confirmed", announce(func(c monitorCallout) string {
		return fmt.Sprintf("Customer %s is waiting", c.Code)
	}))
	router.Bind("monitor_therapist_confirmed", announce(func(c monitorCallout) string {
		return fmt.Sprintf("Customer %s, please proceed to room %s", c.Code, c.Room)
	}))
	router.Bind("monitor_service_started", announce(func(c monitorCallout) string {
		return fmt.Sprintf("Service started for customer %s", c.Code)
	}))
	router.Bind("monitor_service_finished", announce(func(c monitorCallout) string {
		return fmt.Sprintf("Service finished for customer %s", c.Code)
	}))
	router.Bind("monitor_payment_counter", announce(func(c monitorCallout) string {
		return fmt.Sprintf("Customer %s, please pay at counter %s", c.Code, c.Counter)
	}))
	router.Bind("monitor_payment_completed", announce(func(c monitorCallout) string {
		return fmt.Sprintf("Customer %s, thank you for your visit", c.Code)
	}))

	return s
}

func (s *MonitorSession) Subscribe() error {
	return s.socket.Emit("monitor_subscribe", struct{}{})
}
