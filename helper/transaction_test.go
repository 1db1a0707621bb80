package helper

import (
	"testing"
	"time"

	"spa_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeTransactionSecondsOnWire(t *testing.T) {
	room := "101"
	counter := "2"
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	txn := &model.Transaction{
		Code:                 "0042",
		Status:               model.StatusInService,
		RoomNumber:           &room,
		TotalAmount:          84.99,
		TotalDurationMinutes: 70,
		ServiceStartAt:       &start,
		Therapist:            &model.Therapist{Name: "Ann"},
		AssignedCashier:      &model.Cashier{Name: "Bea", CounterNumber: &counter},
		Items: []model.TransactionItem{
			{
				ServiceId:             1,
				Price:                 55,
				DurationMinutes:       40,
				Service:               model.Service{ServiceName: "Accupressure"},
				ServiceClassification: model.ServiceClassification{ClassificationName: "Full Back"},
			},
			{
				ServiceId:             2,
				Price:                 29.99,
				DurationMinutes:       30,
				Service:               model.Service{ServiceName: "Foot Reflexology"},
				ServiceClassification: model.ServiceClassification{ClassificationName: "Standard"},
			},
		},
	}
	txn.ID = 7

	payload := SerializeTransaction(txn)
	require.NotNil(t, payload)

	assert.Equal(t, uint(7), payload.Id)
	assert.Equal(t, "0042", payload.Code)
	assert.Equal(t, "in_service", payload.Status)
	assert.Equal(t, 70*60, payload.TotalDurationSeconds)
	require.NotNil(t, payload.Therapist)
	assert.Equal(t, "Ann", *payload.Therapist)
	require.NotNil(t, payload.Counter)
	assert.Equal(t, "2", *payload.Counter)
	require.NotNil(t, payload.ServiceStartAt)
	assert.True(t, start.Equal(*payload.ServiceStartAt))

	require.Len(t, payload.Items, 2)
	assert.Equal(t, "Accupressure", payload.Items[0].ServiceName)
	assert.Equal(t, 40*60, payload.Items[0].DurationSeconds)
	assert.Equal(t, 30*60, payload.Items[1].DurationSeconds)
}

func TestSerializeTransactionOptionalFields(t *testing.T) {
	assert.Nil(t, SerializeTransaction(nil))

	txn := &model.Transaction{Code: "0001", Status: model.StatusPendingTherapist}
	payload := SerializeTransaction(txn)
	require.NotNil(t, payload)

	assert.Nil(t, payload.Therapist)
	assert.Nil(t, payload.RoomNumber)
	assert.Nil(t, payload.Cashier)
	assert.Nil(t, payload.ServiceStartAt)
	assert.NotNil(t, payload.Items, "items serialize as an empty list, never null")
	assert.Empty(t, payload.Items)
}
