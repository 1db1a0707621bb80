package helper

import (
	"testing"
	"time"

	"spa_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailySummary(t *testing.T) {
	now := time.Date(2026, 3, 1, 23, 55, 0, 0, time.UTC)

	payments := []model.Payment{
		{Cashier: model.Cashier{Name: "Bea"}, AmountPaid: 60},
		{Cashier: model.Cashier{Name: "Cam"}, AmountPaid: 30},
		{Cashier: model.Cashier{Name: "Bea"}, AmountPaid: 40},
	}

	data := BuildDailySummary(payments, now)

	assert.Equal(t, 3, data.PaymentCount)
	assert.Equal(t, 130.0, data.TotalAmount)

	require.Len(t, data.Cashiers, 2)
	assert.Equal(t, "Bea", data.Cashiers[0].CashierName)
	assert.Equal(t, 2, data.Cashiers[0].PaymentCount)
	assert.Equal(t, 100.0, data.Cashiers[0].TotalAmount)
	assert.Equal(t, "Cam", data.Cashiers[1].CashierName)
	assert.Equal(t, 1, data.Cashiers[1].PaymentCount)
}

func TestBuildDailySummaryEmptyDay(t *testing.T) {
	data := BuildDailySummary(nil, time.Date(2026, 3, 1, 23, 55, 0, 0, time.UTC))

	assert.Equal(t, 0, data.PaymentCount)
	assert.Equal(t, 0.0, data.TotalAmount)
	assert.Empty(t, data.Cashiers)
	assert.NotEmpty(t, data.Date)
}
