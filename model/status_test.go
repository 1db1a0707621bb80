package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusChain(t *testing.T) {
	chain := []TransactionStatus{
		StatusPendingTherapist,
		StatusTherapistConfirmed,
		StatusInService,
		StatusFinished,
		StatusPaymentAssigned,
		StatusPaid,
	}

	for i := 0; i < len(chain)-1; i++ {
		assert.True(t, chain[i].CanTransitionTo(chain[i+1]), "%s -> %s", chain[i], chain[i+1])
	}

	// No skipping ahead, no going back
	assert.False(t, StatusPendingTherapist.CanTransitionTo(StatusInService))
	assert.False(t, StatusInService.CanTransitionTo(StatusPendingTherapist))
	assert.False(t, StatusFinished.CanTransitionTo(StatusPaid))
	assert.False(t, StatusPaid.CanTransitionTo(StatusPendingTherapist))
	assert.False(t, StatusInService.CanTransitionTo(StatusInService))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusInService.Valid())
	assert.False(t, TransactionStatus("cancelled").Valid())
	assert.False(t, TransactionStatus("").Valid())
	assert.False(t, TransactionStatus("refunded").CanTransitionTo(StatusPaid))
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusPaid.Terminal())
	assert.False(t, StatusFinished.Terminal())
	assert.False(t, StatusPendingTherapist.Terminal())
}

func TestRecomputeTotals(t *testing.T) {
	txn := Transaction{
		Items: []TransactionItem{
			{Price: 29.99, DurationMinutes: 30},
			{Price: 55, DurationMinutes: 40},
		},
	}
	txn.RecomputeTotals()

	assert.Equal(t, 84.99, txn.TotalAmount)
	assert.Equal(t, 70, txn.TotalDurationMinutes)

	txn.Items = nil
	txn.RecomputeTotals()
	assert.Equal(t, 0.0, txn.TotalAmount)
	assert.Equal(t, 0, txn.TotalDurationMinutes)
}
