package client

import (
	"spa_manager/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCustomerPlaceholders(t *testing.T) {
	assert.Contains(t, RenderCustomer(nil), "No active transaction")

	empty := sampleTxn(1, "pending_therapist")
	empty.Items = nil
	out := RenderCustomer(empty)
	assert.Contains(t, out, "No services selected")
	assert.Contains(t, out, "0042")
}

func TestRenderCustomerStatusAffordances(t *testing.T) {
	room := "101"
	txn := sampleTxn(1, "therapist_confirmed")
	txn.RoomNumber = &room
	assert.Contains(t, RenderCustomer(txn), "room 101")

	counter := "2"
	txn = sampleTxn(1, "payment_assigned")
	txn.Counter = &counter
	assert.Contains(t, RenderCustomer(txn), "counter 2")

	assert.Contains(t, RenderCustomer(sampleTxn(1, "paid")), "Thank you")
}

func TestRenderTherapistControls(t *testing.T) {
	assert.Contains(t, RenderTherapist(nil), "No customer claimed")

	assert.Contains(t, RenderTherapist(sampleTxn(1, "therapist_confirmed")), "[Start service]")
	assert.Contains(t, RenderTherapist(sampleTxn(1, "in_service")), "[Finish service]")
	assert.NotContains(t, RenderTherapist(sampleTxn(1, "finished")), "[Start service]")
}

func TestRenderCashier(t *testing.T) {
	assert.Contains(t, RenderCashier(nil), "No customer at counter")

	name := "Ann"
	txn := sampleTxn(1, "payment_assigned")
	txn.Therapist = &name
	out := RenderCashier(txn)
	assert.Contains(t, out, "Therapist: Ann")
	assert.Contains(t, out, "Amount due: 55.00")
}

func TestRenderMonitorEmptyGroups(t *testing.T) {
	out := RenderMonitor(&model.MonitorSnapshot{})
	assert.Contains(t, out, "Waiting:")
	assert.Contains(t, out, "No customers")

	assert.NotEmpty(t, RenderMonitor(nil), "a missing snapshot still renders the board frame")
}

func TestRenderItemFallbacks(t *testing.T) {
	txn := sampleTxn(1, "pending_therapist")
	txn.Items = []model.TransactionItemPayload{{Price: 10, DurationSeconds: 600}}
	assert.Contains(t, RenderCustomer(txn), "Unknown service")
}
