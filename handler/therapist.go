package handler

import (
	"errors"
	"spa_manager/constants"
	"spa_manager/database"
	"spa_manager/helper"
	"spa_manager/model"
	"spa_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetFinishedTransactions lists this therapist's finished, not yet paid
// sessions for the queue page history panel.
func GetFinishedTransactions(c *fiber.Ctx) error {
	claim, isTherapist, _ := helper.GetStaffFromToken(c)
	if !isTherapist {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	var txns []model.Transaction
	if err := database.DB.
		Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("transaction_items.id asc") }).
		Preload("Items.Service").
		Preload("Items.ServiceClassification").
		Preload("Therapist").
		Preload("AssignedCashier").
		Where("therapist_id = ? AND status IN ?", claim.StaffId,
			[]model.TransactionStatus{model.StatusFinished, model.StatusPaymentAssigned}).
		Order("service_finish_at desc").
		Find(&txns).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load finished transactions", err)
	}

	result := []model.TransactionPayload{}
	for i := range txns {
		result = append(result, *helper.SerializeTransaction(&txns[i]))
	}
	return c.JSON(fiber.Map{"transactions": result})
}

// ToggleRoomStatus flips the therapist's room between available and
// preparing (break). Rejected while a customer is inside.
func ToggleRoomStatus(c *fiber.Ctx) error {
	claim, isTherapist, _ := helper.GetStaffFromToken(c)
	if !isTherapist {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	therapist, err := helper.GetTherapistById(claim.StaffId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if therapist == nil || therapist.RoomNumber == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("no room assigned"))
	}

	status, err := helper.ToggleRoomBreak(database.DB, *therapist.RoomNumber)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Cannot toggle room status", err)
	}

	broadcast(constants.RoomMonitor, "monitor_updated", fiber.Map{})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"room_number": *therapist.RoomNumber,
		"status":      status,
	})
}
