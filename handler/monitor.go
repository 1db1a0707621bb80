package handler

import (
	"spa_manager/database"
	"spa_manager/helper"
	"spa_manager/model"
	"spa_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func loadGroup(status model.TransactionStatus, orderBy string) ([]model.TransactionPayload, error) {
	var txns []model.Transaction
	err := database.DB.
		Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("transaction_items.id asc") }).
		Preload("Items.Service").
		Preload("Items.ServiceClassification").
		Preload("Therapist").
		Preload("AssignedCashier").
		Where("status = ?", status).
		Order(orderBy + " asc").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}

	result := []model.TransactionPayload{}
	for i := range txns {
		result = append(result, *helper.SerializeTransaction(&txns[i]))
	}
	return result, nil
}

// MonitorSnapshot groups every live transaction by lifecycle phase, each
// group FIFO-ordered by the timestamp that put it there. "Serving" covers
// both therapist_confirmed and in_service.
func MonitorSnapshot(c *fiber.Ctx) error {
	waiting, err := loadGroup(model.StatusPendingTherapist, "selection_confirmed_at")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load snapshot", err)
	}
	confirmed, err := loadGroup(model.StatusTherapistConfirmed, "therapist_confirmed_at")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load snapshot", err)
	}
	inService, err := loadGroup(model.StatusInService, "service_start_at")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load snapshot", err)
	}
	finished, err := loadGroup(model.StatusFinished, "service_finish_at")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load snapshot", err)
	}
	paymentAssigned, err := loadGroup(model.StatusPaymentAssigned, "cashier_claimed_at")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load snapshot", err)
	}

	return c.JSON(model.MonitorSnapshot{
		Waiting:         waiting,
		Serving:         append(confirmed, inService...),
		Finished:        finished,
		PaymentAssigned: paymentAssigned,
	})
}

// RoomStatus lists every room; ongoing services carry the anchor time and
// duration so monitors can recompute countdowns after a reload.
func RoomStatus(c *fiber.Ctx) error {
	var rooms []model.Room
	if err := database.DB.
		Preload("CurrentTransaction").
		Order("room_number asc").
		Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load rooms", err)
	}

	result := []model.RoomStatusPayload{}
	for _, room := range rooms {
		payload := model.RoomStatusPayload{
			RoomNumber: room.RoomNumber,
			Status:     room.Status,
		}
		if room.Status == model.RoomOnGoingService && room.CurrentTransaction != nil {
			txn := room.CurrentTransaction
			seconds := txn.TotalDurationMinutes * 60
			payload.TransactionId = &txn.ID
			payload.TransactionCode = &txn.Code
			payload.ServiceStartAt = txn.ServiceStartAt
			payload.TotalDurationSeconds = &seconds
		}
		result = append(result, payload)
	}

	return c.JSON(fiber.Map{"rooms": result})
}

// CashierStatus lists active cashiers with the transactions parked at
// their counters.
func CashierStatus(c *fiber.Ctx) error {
	var cashiers []model.Cashier
	if err := database.DB.
		Where("active = true").
		Order("counter_number asc").
		Find(&cashiers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load cashiers", err)
	}

	result := []model.CashierStatusPayload{}
	for _, cashier := range cashiers {
		var txns []model.Transaction
		if err := database.DB.
			Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("transaction_items.id asc") }).
			Preload("Items.Service").
			Preload("Items.ServiceClassification").
			Preload("Therapist").
			Preload("AssignedCashier").
			Where("assigned_cashier_id = ? AND status = ?", cashier.ID, model.StatusPaymentAssigned).
			Order("cashier_claimed_at asc").
			Find(&txns).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load cashier queue", err)
		}

		payloads := []model.TransactionPayload{}
		for i := range txns {
			payloads = append(payloads, *helper.SerializeTransaction(&txns[i]))
		}

		counter := ""
		if cashier.CounterNumber != nil {
			counter = *cashier.CounterNumber
		}
		result = append(result, model.CashierStatusPayload{
			Name:             cashier.Name,
			CounterNumber:    counter,
			TransactionCount: len(payloads),
			Transactions:     payloads,
		})
	}

	return c.JSON(fiber.Map{"cashiers": result})
}
