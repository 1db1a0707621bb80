package model

import "time"

type TransactionCounter struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	NextNumber int  `gorm:"not null;default:1" json:"nextNumber"`
}

type Transaction struct {
	DTO
	Code   string            `gorm:"uniqueIndex;size:8" json:"code"`
	Status TransactionStatus `gorm:"not null;default:'pending_therapist'" json:"status"`

	TherapistId *uint      `json:"therapistId"`
	Therapist   *Therapist `gorm:"foreignKey:TherapistId" json:"therapist,omitempty"`

	// Non-null from therapist_confirmed onward
	RoomNumber *string `gorm:"size:20" json:"roomNumber"`

	// Non-null from payment_assigned onward
	AssignedCashierId *uint    `json:"assignedCashierId"`
	AssignedCashier   *Cashier `gorm:"foreignKey:AssignedCashierId" json:"assignedCashier,omitempty"`

	TotalAmount          float64 `gorm:"default:0" json:"totalAmount"`
	TotalDurationMinutes int     `gorm:"default:0" json:"totalDurationMinutes"`

	SelectionConfirmedAt *time.Time `json:"selectionConfirmedAt"`
	TherapistConfirmedAt *time.Time `json:"therapistConfirmedAt"`
	ServiceStartAt       *time.Time `json:"serviceStartAt"`
	ServiceFinishAt      *time.Time `json:"serviceFinishAt"`
	CashierClaimedAt     *time.Time `json:"cashierClaimedAt"`
	PaidAt               *time.Time `json:"paidAt"`

	Items   []TransactionItem `gorm:"foreignKey:TransactionId;constraint:OnDelete:CASCADE" json:"items"`
	Payment *Payment          `gorm:"foreignKey:TransactionId" json:"payment,omitempty"`
}

type TransactionItem struct {
	DTO
	TransactionId           uint `gorm:"not null;index" json:"transactionId"`
	ServiceId               uint `gorm:"not null" json:"serviceId"`
	ServiceClassificationId uint `gorm:"not null" json:"serviceClassificationId"`

	Price           float64 `gorm:"not null" json:"price"`
	DurationMinutes int     `gorm:"not null;default:60" json:"durationMinutes"`

	Service               Service               `gorm:"foreignKey:ServiceId" json:"-"`
	ServiceClassification ServiceClassification `gorm:"foreignKey:ServiceClassificationId" json:"-"`
}

// RecomputeTotals rebuilds the aggregates from the loaded items.
func (t *Transaction) RecomputeTotals() {
	total := 0.0
	duration := 0
	for _, item := range t.Items {
		total += item.Price
		duration += item.DurationMinutes
	}
	t.TotalAmount = round2(total)
	t.TotalDurationMinutes = duration
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

// Socket inputs

type SelectionItemInput struct {
	ServiceId               uint `json:"service_id" validate:"required,gt=0"`
	ServiceClassificationId uint `json:"service_classification_id" validate:"omitempty,gt=0"`
}

type ConfirmSelectionInput struct {
	Items []SelectionItemInput `json:"items" validate:"required,min=1,dive"`
}

type JoinRoomInput struct {
	Room string `json:"room" validate:"required"`
}

type TherapistConfirmInput struct {
	TherapistName string `json:"therapist_name"`
	RoomNumber    string `json:"room_number"`
}

type StartServiceInput struct {
	TransactionId uint `json:"transaction_id" validate:"required,gt=0"`
}

type AddServiceInput struct {
	TransactionId           uint `json:"transaction_id" validate:"required,gt=0"`
	ServiceId               uint `json:"service_id" validate:"required,gt=0"`
	ServiceClassificationId uint `json:"service_classification_id" validate:"omitempty,gt=0"`
}

type RemoveItemInput struct {
	TransactionItemId uint `json:"transaction_item_id" validate:"required,gt=0"`
}

type FinishServiceInput struct {
	TransactionId uint `json:"transaction_id" validate:"required,gt=0"`
}

type CashierClaimInput struct {
	CashierName   string `json:"cashier_name"`
	CounterNumber string `json:"counter_number"`
}

type CashierPayInput struct {
	TransactionId uint    `json:"transaction_id" validate:"required,gt=0"`
	AmountPaid    float64 `json:"amount_paid" validate:"required,gt=0"`
	Method        string  `json:"method" validate:"omitempty,oneof=cash card ewallet"`
}
