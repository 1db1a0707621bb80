package helper

import (
	"errors"
	"fmt"
	"log"
	"os"
	"spa_manager/constants"
	"spa_manager/database"
	"spa_manager/model"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["staffId"] = tokenClaim.StaffId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["staffId"] = tokenClaim.StaffId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetStaffFromToken reads the staff identity out of the request token set
// by the middleware. Returns the claim plus role flags.
func GetStaffFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool) {
	u := c.Locals("user")
	if u == nil {
		return model.TokenClaim{}, false, false
	}
	token, ok := u.(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false, false
	}

	staffId := float64(0)
	if v, ok := claims["staffId"].(float64); ok {
		staffId = v
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	claim := model.TokenClaim{
		StaffId:  uint(staffId),
		Username: username,
		Role:     role,
	}
	return claim, role == constants.ROLE_THERAPIST, role == constants.ROLE_CASHIER
}

// ParseClaimFromTokenString is the websocket-side twin of GetStaffFromToken:
// sockets carry the token as a query parameter instead of a request cookie.
func ParseClaimFromTokenString(tokenString string) (model.TokenClaim, bool) {
	if tokenString == "" {
		return model.TokenClaim{}, false
	}
	token, err := ParseToken(tokenString)
	if err != nil || !token.Valid {
		return model.TokenClaim{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
	}
	staffId := float64(0)
	if v, ok := claims["staffId"].(float64); ok {
		staffId = v
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	return model.TokenClaim{StaffId: uint(staffId), Username: username, Role: role}, true
}

// IssueTherapistToken stores an opaque session token on the therapist row.
func IssueTherapistToken(db *gorm.DB, therapist *model.Therapist, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	expires := time.Now().Add(ttl)
	therapist.AuthToken = &token
	therapist.TokenExpiresAt = &expires
	if err := db.Save(therapist).Error; err != nil {
		return "", err
	}
	return token, nil
}

func IssueCashierToken(db *gorm.DB, cashier *model.Cashier, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	expires := time.Now().Add(ttl)
	cashier.AuthToken = &token
	cashier.TokenExpiresAt = &expires
	if err := db.Save(cashier).Error; err != nil {
		return "", err
	}
	return token, nil
}

func GetTherapistById(id uint) (*model.Therapist, error) {
	var therapist model.Therapist
	if err := database.DB.First(&therapist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("therapist lookup failed: id=%d, error=%v", id, err)
		return nil, err
	}
	return &therapist, nil
}

func GetCashierById(id uint) (*model.Cashier, error) {
	var cashier model.Cashier
	if err := database.DB.First(&cashier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("cashier lookup failed: id=%d, error=%v", id, err)
		return nil, err
	}
	return &cashier, nil
}
