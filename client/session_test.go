package client

import (
	"encoding/json"
	"testing"
	"time"

	"spa_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSocket struct {
	emits []Frame
}

func (s *fakeSocket) Emit(event string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	s.emits = append(s.emits, Frame{Event: event, Data: raw})
	return nil
}

func (s *fakeSocket) Close() error { return nil }

func (s *fakeSocket) events() []string {
	names := make([]string, 0, len(s.emits))
	for _, f := range s.emits {
		names = append(names, f.Event)
	}
	return names
}

func mustRaw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestCustomerSelectionReceivedJoinsRoom(t *testing.T) {
	socket := &fakeSocket{}
	router := NewRouter()
	store := NewMemoryStore()

	var display string
	s := NewCustomerSession(socket, router, store, func(out string) { display = out })
	s.AddToCart(model.SelectionItemInput{ServiceId: 1})

	router.Dispatch(Frame{Event: "customer_selection_received", Data: mustRaw(t, model.SelectionReceived{
		TransactionId: 12,
		Transaction:   sampleTxn(12, "pending_therapist"),
	})})

	require.Equal(t, []string{"join_room"}, socket.events())
	assert.Contains(t, string(socket.emits[0].Data), "txn_12")
	assert.Contains(t, display, "0042")
	assert.Empty(t, s.Cart(), "a confirmed cart is cleared")
}

func TestCustomerIgnoresForeignUpdates(t *testing.T) {
	socket := &fakeSocket{}
	router := NewRouter()

	var display string
	s := NewCustomerSession(socket, router, NewMemoryStore(), func(out string) { display = out })

	router.Dispatch(Frame{Event: "customer_selection_received", Data: mustRaw(t, model.SelectionReceived{
		TransactionId: 12,
		Transaction:   sampleTxn(12, "pending_therapist"),
	})})
	before := display

	foreign := sampleTxn(99, "paid")
	router.Dispatch(Frame{Event: "customer_txn_update", Data: mustRaw(t, foreign)})

	assert.Equal(t, before, display, "foreign updates never touch local state")
	require.NotNil(t, s.Ctx.Current())
	assert.Equal(t, uint(12), s.Ctx.Current().Id)

	mine := sampleTxn(12, "therapist_confirmed")
	router.Dispatch(Frame{Event: "customer_txn_update", Data: mustRaw(t, mine)})
	assert.Equal(t, "therapist_confirmed", s.Ctx.Current().Status)
}

func TestCustomerTimerFollowsServiceStart(t *testing.T) {
	socket := &fakeSocket{}
	router := NewRouter()

	s := NewCustomerSession(socket, router, NewMemoryStore(), nil)
	s.Timer.Interval = time.Hour

	router.Dispatch(Frame{Event: "customer_selection_received", Data: mustRaw(t, model.SelectionReceived{
		TransactionId: 12,
		Transaction:   sampleTxn(12, "pending_therapist"),
	})})
	assert.False(t, s.Timer.Running())

	started := sampleTxn(12, "in_service")
	anchor := time.Now()
	started.ServiceStartAt = &anchor
	router.Dispatch(Frame{Event: "customer_txn_update", Data: mustRaw(t, started)})
	assert.True(t, s.Timer.Running())

	finished := sampleTxn(12, "finished")
	router.Dispatch(Frame{Event: "customer_txn_update", Data: mustRaw(t, finished)})
	assert.False(t, s.Timer.Running(), "leaving in_service stops the countdown")
}

func TestTherapistTimerFollowsServiceStart(t *testing.T) {
	socket := &fakeSocket{}
	router := NewRouter()

	s := NewTherapistSession(socket, router, NewMemoryStore(), nil)
	s.Timer.Interval = time.Hour

	router.Dispatch(Frame{Event: "therapist_confirm_result", Data: mustRaw(t, model.OpResult{
		Ok:          true,
		Transaction: sampleTxn(5, "therapist_confirmed"),
	})})
	assert.False(t, s.Timer.Running())

	// Service start arrives on the transaction channel, not as a reply
	foreign := sampleTxn(99, "in_service")
	anchor := time.Now()
	foreign.ServiceStartAt = &anchor
	router.Dispatch(Frame{Event: "customer_txn_update", Data: mustRaw(t, foreign)})
	assert.Equal(t, "therapist_confirmed", s.Ctx.Current().Status, "foreign updates are ignored")
	assert.False(t, s.Timer.Running())

	started := sampleTxn(5, "in_service")
	started.ServiceStartAt = &anchor
	router.Dispatch(Frame{Event: "customer_txn_update", Data: mustRaw(t, started)})

	require.NotNil(t, s.Ctx.Current())
	assert.Equal(t, "in_service", s.Ctx.Current().Status)
	assert.True(t, s.Timer.Running())
	assert.False(t, s.FinishEnabled(), "finish stays gated until the countdown expires")

	s.Timer.Stop()
}

func TestTherapistConfirmFailureKeepsState(t *testing.T) {
	socket := &fakeSocket{}
	router := NewRouter()

	var notified string
	s := NewTherapistSession(socket, router, NewMemoryStore(), nil)
	s.Notify = func(msg string) { notified = msg }

	router.Dispatch(Frame{Event: "therapist_confirm_result", Data: mustRaw(t, model.OpResult{
		Ok:    false,
		Error: "No pending customers.",
	})})

	assert.Equal(t, "No pending customers.", notified)
	assert.Nil(t, s.Ctx.Current())
}

func TestTherapistFinishClearsCurrent(t *testing.T) {
	socket := &fakeSocket{}
	router := NewRouter()

	s := NewTherapistSession(socket, router, NewMemoryStore(), nil)
	s.Timer.Interval = time.Hour

	router.Dispatch(Frame{Event: "therapist_confirm_result", Data: mustRaw(t, model.OpResult{
		Ok:          true,
		Transaction: sampleTxn(5, "therapist_confirmed"),
	})})
	require.NotNil(t, s.Ctx.Current())

	router.Dispatch(Frame{Event: "therapist_finish_result", Data: mustRaw(t, model.OpResult{
		Ok:          true,
		Transaction: sampleTxn(5, "finished"),
	})})
	assert.Nil(t, s.Ctx.Current())
	assert.False(t, s.Timer.Running())
}

func TestTherapistFinishFailureReenablesControl(t *testing.T) {
	socket := &fakeSocket{}
	router := NewRouter()

	var notified string
	s := NewTherapistSession(socket, router, NewMemoryStore(), nil)
	s.Notify = func(msg string) { notified = msg }

	router.Dispatch(Frame{Event: "therapist_confirm_result", Data: mustRaw(t, model.OpResult{
		Ok:          true,
		Transaction: sampleTxn(5, "in_service"),
	})})

	require.NoError(t, s.FinishService())
	assert.False(t, s.FinishEnabled())

	router.Dispatch(Frame{Event: "therapist_finish_result", Data: mustRaw(t, model.OpResult{
		Ok:    false,
		Error: "Invalid transaction state",
	})})

	assert.True(t, s.FinishEnabled())
	assert.Equal(t, "Invalid transaction state", notified)
	assert.NotNil(t, s.Ctx.Current(), "a failed finish keeps the transaction")
}

func TestCashierPayValidatesLocally(t *testing.T) {
	socket := &fakeSocket{}
	router := NewRouter()

	s := NewCashierSession(socket, router, NewMemoryStore(), nil)

	assert.ErrorIs(t, s.Pay(100, "cash"), errNoCurrentTransaction)

	router.Dispatch(Frame{Event: "cashier_claim_result", Data: mustRaw(t, model.OpResult{
		Ok:          true,
		Transaction: sampleTxn(3, "payment_assigned"),
	})})
	require.NotNil(t, s.Ctx.Current())
	assert.True(t, s.PayEnabled)

	before := len(socket.emits)
	assert.ErrorIs(t, s.Pay(54.99, "cash"), errInsufficientPayment)
	assert.Len(t, socket.emits, before, "an insufficient amount never reaches the server")

	require.NoError(t, s.Pay(60, "cash"))
	assert.False(t, s.PayEnabled)
	assert.Equal(t, "cashier_pay", socket.emits[len(socket.emits)-1].Event)
}

func TestCashierPayFailureKeepsTransaction(t *testing.T) {
	socket := &fakeSocket{}
	router := NewRouter()

	var notified string
	s := NewCashierSession(socket, router, NewMemoryStore(), nil)
	s.Notify = func(msg string) { notified = msg }

	router.Dispatch(Frame{Event: "cashier_claim_result", Data: mustRaw(t, model.OpResult{
		Ok:          true,
		Transaction: sampleTxn(3, "payment_assigned"),
	})})
	require.NoError(t, s.Pay(60, "cash"))

	router.Dispatch(Frame{Event: "cashier_pay_result", Data: mustRaw(t, model.OpResult{
		Ok:    false,
		Error: "Insufficient payment",
	})})

	assert.True(t, s.PayEnabled, "a failed payment re-enables the control")
	assert.NotNil(t, s.Ctx.Current())
	assert.Equal(t, "Insufficient payment", notified)

	queueRefreshed := false
	s.OnQueueChanged = func() { queueRefreshed = true }
	router.Dispatch(Frame{Event: "cashier_pay_result", Data: mustRaw(t, model.OpResult{
		Ok:          true,
		Transaction: sampleTxn(3, "paid"),
	})})
	assert.Nil(t, s.Ctx.Current())
	assert.True(t, queueRefreshed)
}

func TestMonitorSessionCallouts(t *testing.T) {
	socket := &fakeSocket{}
	router := NewRouter()

	s := NewMonitorSession(socket, router)

	changed := 0
	s.OnChanged = func() { changed++ }
	var callouts []string
	s.Announce = func(msg string) { callouts = append(callouts, msg) }

	router.Dispatch(frame("monitor_updated", `{}`))
	router.Dispatch(frame("monitor_updated", `{}`))
	assert.Equal(t, 2, changed)

	router.Dispatch(frame("monitor_therapist_confirmed", `{"code":"0042","therapist":"Ann","room":"101"}`))
	router.Dispatch(frame("monitor_payment_counter", `{"code":"0042","cashier":"Bea","counter":"2"}`))

	require.Len(t, callouts, 2)
	assert.Contains(t, callouts[0], "room 101")
	assert.Contains(t, callouts[1], "counter 2")
}
