package client

import (
	"reflect"
	"spa_manager/model"
	"sync"
)

// RenderFunc turns a transaction (or nil for the neutral empty state)
// into the view's display text. Renderers hold no state of their own.
type RenderFunc func(txn *model.TransactionPayload) string

// SessionContext owns the single "current transaction" slot of a view.
// The event router writes it from the transport loop while the countdown
// reads it from the ticker goroutine, so the slot is mutex-guarded and a
// render pass never sees a half-applied update.
type SessionContext struct {
	store   Store
	render  RenderFunc
	display func(string)

	mu      sync.Mutex
	current *model.TransactionPayload
}

func NewSessionContext(store Store, render RenderFunc, display func(string)) *SessionContext {
	if display == nil {
		display = func(string) {}
	}
	return &SessionContext{store: store, render: render, display: display}
}

// SetCurrent replaces the tracked transaction, persists the snapshot for
// reload survival and synchronously re-renders. Setting the same value
// again is a no-op; setting nil renders the neutral empty state.
func (s *SessionContext) SetCurrent(txn *model.TransactionPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if reflect.DeepEqual(s.current, txn) {
		return
	}
	s.current = txn

	if txn != nil {
		s.store.Set(KeyCurrentTxn, txn)
	} else {
		s.store.Delete(KeyCurrentTxn)
	}

	s.display(s.render(txn))
}

func (s *SessionContext) Current() *model.TransactionPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Restore loads the persisted snapshot from a previous page load, if any.
// The caller still reconciles against the server before trusting it.
func (s *SessionContext) Restore() *model.TransactionPayload {
	var txn model.TransactionPayload
	if !s.store.Get(KeyCurrentTxn, &txn) {
		return nil
	}
	return &txn
}

// Refresh re-renders the current value without changing it.
func (s *SessionContext) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display(s.render(s.current))
}
