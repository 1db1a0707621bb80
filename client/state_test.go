package client

import (
	"spa_manager/model"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTxn(id uint, status string) *model.TransactionPayload {
	return &model.TransactionPayload{
		Id:                   id,
		Code:                 "0042",
		Status:               status,
		TotalAmount:          55,
		TotalDurationSeconds: 2400,
		Items: []model.TransactionItemPayload{
			{Id: 1, ServiceName: "Accupressure", ClassificationName: "Full Back", Price: 55, DurationSeconds: 2400},
		},
	}
}

func TestSessionContextSetCurrentPersists(t *testing.T) {
	store := NewMemoryStore()
	var renders []string
	ctx := NewSessionContext(store, RenderCustomer, func(out string) { renders = append(renders, out) })

	txn := sampleTxn(7, "pending_therapist")
	ctx.SetCurrent(txn)

	require.Len(t, renders, 1)
	assert.Contains(t, renders[0], "0042")

	var persisted model.TransactionPayload
	require.True(t, store.Get(KeyCurrentTxn, &persisted))
	assert.Equal(t, uint(7), persisted.Id)

	ctx.SetCurrent(nil)
	require.Len(t, renders, 2)
	assert.Contains(t, renders[1], "No active transaction")
	assert.False(t, store.Get(KeyCurrentTxn, &persisted), "clearing removes the snapshot")
}

func TestSessionContextSetCurrentIdempotent(t *testing.T) {
	store := NewMemoryStore()
	renders := 0
	ctx := NewSessionContext(store, RenderCustomer, func(string) { renders++ })

	ctx.SetCurrent(sampleTxn(7, "pending_therapist"))
	ctx.SetCurrent(sampleTxn(7, "pending_therapist"))
	assert.Equal(t, 1, renders, "setting an equal value again is a no-op")

	ctx.SetCurrent(sampleTxn(7, "therapist_confirmed"))
	assert.Equal(t, 2, renders)

	ctx.SetCurrent(nil)
	ctx.SetCurrent(nil)
	assert.Equal(t, 3, renders)
}

func TestSessionContextConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := NewSessionContext(store, RenderCustomer, func(string) {})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			ctx.SetCurrent(sampleTxn(uint(i%2+1), "in_service"))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			ctx.Refresh()
			_ = ctx.Current()
		}
	}()
	wg.Wait()

	require.NotNil(t, ctx.Current())
}

func TestSessionContextRestore(t *testing.T) {
	store := NewMemoryStore()
	ctx := NewSessionContext(store, RenderCustomer, nil)

	assert.Nil(t, ctx.Restore())

	ctx.SetCurrent(sampleTxn(9, "in_service"))

	fresh := NewSessionContext(store, RenderCustomer, nil)
	restored := fresh.Restore()
	require.NotNil(t, restored)
	assert.Equal(t, uint(9), restored.Id)
	assert.Equal(t, "in_service", restored.Status)
}
