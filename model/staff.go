package model

import "time"

type Therapist struct {
	DTO
	Username     string  `gorm:"unique;not null;size:80" json:"username"`
	PasswordHash string  `gorm:"not null;size:255" json:"-"`
	Name         string  `gorm:"unique;not null;size:120" json:"name"`
	RoomNumber   *string `gorm:"size:20" json:"roomNumber"`
	Active       bool    `gorm:"default:true" json:"active"`

	AuthToken      *string    `gorm:"unique;size:255" json:"-"`
	TokenExpiresAt *time.Time `json:"-"`

	Transactions []Transaction `gorm:"foreignKey:TherapistId" json:"-"`
}

type Cashier struct {
	DTO
	Username      string  `gorm:"unique;not null;size:80" json:"username"`
	PasswordHash  string  `gorm:"not null;size:255" json:"-"`
	Name          string  `gorm:"unique;not null;size:120" json:"name"`
	CounterNumber *string `gorm:"size:20" json:"counterNumber"`
	Active        bool    `gorm:"default:true" json:"active"`

	AuthToken      *string    `gorm:"unique;size:255" json:"-"`
	TokenExpiresAt *time.Time `json:"-"`

	Payments []Payment `gorm:"foreignKey:CashierId" json:"-"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	// Optional station override, kept from the login form
	RoomNumber    string `json:"roomNumber" validate:"omitempty,max=20"`
	CounterNumber string `json:"counterNumber" validate:"omitempty,max=20"`
}
