package helper

import (
	"errors"
	"spa_manager/model"

	"gorm.io/gorm"
)

// OccupyRoom marks a room taken by a confirmed transaction. Missing rooms
// are created on the fly so a therapist logging in with a new station
// number does not strand the queue.
func OccupyRoom(tx *gorm.DB, roomNumber string, transactionId uint) error {
	var room model.Room
	if err := tx.Where(model.Room{RoomNumber: roomNumber}).FirstOrCreate(&room).Error; err != nil {
		return err
	}
	return tx.Model(&room).Updates(map[string]any{
		"status":                 model.RoomOccupied,
		"current_transaction_id": transactionId,
	}).Error
}

func StartRoomService(tx *gorm.DB, roomNumber string) error {
	return tx.Model(&model.Room{}).
		Where("room_number = ?", roomNumber).
		Update("status", model.RoomOnGoingService).Error
}

func ReleaseRoom(tx *gorm.DB, roomNumber string) error {
	return tx.Model(&model.Room{}).
		Where("room_number = ?", roomNumber).
		Updates(map[string]any{
			"status":                 model.RoomAvailable,
			"current_transaction_id": nil,
		}).Error
}

// ToggleRoomBreak flips available ⇄ preparing. Rooms holding a customer
// cannot go on break.
func ToggleRoomBreak(tx *gorm.DB, roomNumber string) (string, error) {
	var room model.Room
	if err := tx.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		return "", err
	}

	switch room.Status {
	case model.RoomAvailable:
		room.Status = model.RoomPreparing
	case model.RoomPreparing:
		room.Status = model.RoomAvailable
	default:
		return "", errors.New("room is in use")
	}

	if err := tx.Model(&room).Update("status", room.Status).Error; err != nil {
		return "", err
	}
	return room.Status, nil
}
