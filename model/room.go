package model

const (
	RoomAvailable      = "available"
	RoomOccupied       = "occupied"
	RoomPreparing      = "preparing"
	RoomOnGoingService = "on_going_service"
)

type Room struct {
	DTO
	RoomNumber string `gorm:"unique;not null;size:20" validate:"required" json:"roomNumber"`
	Status     string `gorm:"not null;default:'available'" json:"status"`

	CurrentTransactionId *uint        `json:"currentTransactionId"`
	CurrentTransaction   *Transaction `gorm:"foreignKey:CurrentTransactionId" json:"currentTransaction,omitempty"`
}
