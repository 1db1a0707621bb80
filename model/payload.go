package model

import "time"

// Wire payloads shared by the server serializer and the client sessions.
// One canonical schema, validated once at the transport boundary; every
// duration on the wire is seconds.

type TransactionPayload struct {
	Id                   uint                     `json:"id"`
	Code                 string                   `json:"code"`
	Status               string                   `json:"status"`
	Therapist            *string                  `json:"therapist"`
	RoomNumber           *string                  `json:"room_number"`
	Cashier              *string                  `json:"cashier"`
	Counter              *string                  `json:"counter"`
	TotalAmount          float64                  `json:"total_amount"`
	TotalDurationSeconds int                      `json:"total_duration_seconds"`
	ServiceStartAt       *time.Time               `json:"service_start_at"`
	ServiceFinishAt      *time.Time               `json:"service_finish_at"`
	Items                []TransactionItemPayload `json:"items"`
}

type TransactionItemPayload struct {
	Id                 uint    `json:"id"`
	ServiceId          uint    `json:"service_id"`
	ServiceName        string  `json:"service_name"`
	ClassificationName string  `json:"classification_name"`
	Price              float64 `json:"price"`
	DurationSeconds    int     `json:"duration_seconds"`
}

// OpResult is the shape of every *_result / *_done reply: ok plus either
// the adopted transaction or a user-facing error message.
type OpResult struct {
	Ok          bool                `json:"ok"`
	Error       string              `json:"error,omitempty"`
	Transaction *TransactionPayload `json:"transaction,omitempty"`
}

type SelectionReceived struct {
	TransactionId uint                `json:"transaction_id"`
	Transaction   *TransactionPayload `json:"transaction,omitempty"`
}

type MonitorSnapshot struct {
	Waiting         []TransactionPayload `json:"waiting"`
	Serving         []TransactionPayload `json:"serving"`
	Finished        []TransactionPayload `json:"finished"`
	PaymentAssigned []TransactionPayload `json:"payment_assigned"`
}

type RoomStatusPayload struct {
	RoomNumber           string     `json:"room_number"`
	Status               string     `json:"status"`
	TransactionId        *uint      `json:"transaction_id,omitempty"`
	TransactionCode      *string    `json:"transaction_code,omitempty"`
	ServiceStartAt       *time.Time `json:"service_start_at,omitempty"`
	TotalDurationSeconds *int       `json:"total_duration_seconds,omitempty"`
}

type CashierStatusPayload struct {
	Name             string               `json:"name"`
	CounterNumber    string               `json:"counter_number"`
	TransactionCount int                  `json:"transaction_count"`
	Transactions     []TransactionPayload `json:"transactions"`
}
