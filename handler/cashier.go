package handler

import (
	"encoding/base64"
	"log"
	"spa_manager/constants"
	"spa_manager/database"
	"spa_manager/helper"
	"spa_manager/model"
	"spa_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetPaymentHistory returns this cashier's payments, newest first, each
// with a scannable QR of the transaction code for reprints.
func GetPaymentHistory(c *fiber.Ctx) error {
	claim, _, isCashier := helper.GetStaffFromToken(c)
	if !isCashier {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	var payments []model.Payment
	if err := database.DB.
		Preload("Transaction").
		Preload("Transaction.Therapist").
		Where("cashier_id = ?", claim.StaffId).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load payment history", err)
	}

	result := []fiber.Map{}
	for _, payment := range payments {
		qrBase64 := ""
		qrBytes, err := utils.GenerateQRCode(payment.Transaction.Code, 200)
		if err != nil {
			log.Printf("failed to build QR for transaction %s: %v", payment.Transaction.Code, err)
		} else {
			qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
		}

		therapist := ""
		if payment.Transaction.Therapist != nil {
			therapist = payment.Transaction.Therapist.Name
		}

		result = append(result, fiber.Map{
			"code":          payment.Transaction.Code,
			"therapist":     therapist,
			"amount_due":    payment.AmountDue,
			"amount_paid":   payment.AmountPaid,
			"change_amount": payment.ChangeAmount,
			"method":        payment.Method,
			"paid_at":       payment.CreatedAt,
			"qr_code":       qrBase64,
		})
	}

	return c.JSON(fiber.Map{"payments": result})
}
