package handler

import (
	"errors"
	"spa_manager/constants"
	"spa_manager/database"
	"spa_manager/helper"
	"spa_manager/model"
	"spa_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const staffTokenTTL = 12 * time.Hour

func setAuthCookies(c *fiber.Ctx, token, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
}

func LoginTherapist(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoginInput)

	var therapist model.Therapist
	if err := database.DB.Where("username = ?", input.Username).First(&therapist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_USERNAME, errors.New("username not exists"))
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !helper.CheckPasswordHash(input.Password, therapist.PasswordHash) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_PASSWORD, errors.New("password does not match username"))
	}

	if !therapist.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	// The login form may move the therapist to another room for the shift
	if input.RoomNumber != "" {
		therapist.RoomNumber = &input.RoomNumber
	}
	if _, err := helper.IssueTherapistToken(database.DB, &therapist, staffTokenTTL); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	claim := model.TokenClaim{
		StaffId:  therapist.ID,
		Username: therapist.Username,
		Role:     constants.ROLE_THERAPIST,
	}
	token, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, token, refreshToken)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"tokens": model.TokenData{AccessToken: token, RefreshToken: refreshToken},
		"name":   therapist.Name,
		"room":   therapist.RoomNumber,
	})
}

func LoginCashier(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoginInput)

	var cashier model.Cashier
	if err := database.DB.Where("username = ?", input.Username).First(&cashier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_USERNAME, errors.New("username not exists"))
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !helper.CheckPasswordHash(input.Password, cashier.PasswordHash) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_PASSWORD, errors.New("password does not match username"))
	}

	if !cashier.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	if input.CounterNumber != "" {
		cashier.CounterNumber = &input.CounterNumber
	}
	if _, err := helper.IssueCashierToken(database.DB, &cashier, staffTokenTTL); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	claim := model.TokenClaim{
		StaffId:  cashier.ID,
		Username: cashier.Username,
		Role:     constants.ROLE_CASHIER,
	}
	token, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, token, refreshToken)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"tokens":  model.TokenData{AccessToken: token, RefreshToken: refreshToken},
		"name":    cashier.Name,
		"counter": cashier.CounterNumber,
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refresh := c.Cookies("refresh_token")
	if refresh == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing refresh token", errors.New("no token"))
	}

	token, err := helper.ParseToken(refresh)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("bad claims"))
	}

	staffId := float64(0)
	if v, ok := claims["staffId"].(float64); ok {
		staffId = v
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	claim := model.TokenClaim{StaffId: uint(staffId), Username: username, Role: role}
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, accessToken, refresh)
	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: accessToken, RefreshToken: refresh})
}

func Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token", "refresh_token")
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "logged out"})
}
