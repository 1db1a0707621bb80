package model

type Payment struct {
	DTO
	TransactionId uint        `gorm:"uniqueIndex;not null" json:"transactionId"`
	Transaction   Transaction `gorm:"foreignKey:TransactionId" json:"-"`

	CashierId uint    `gorm:"not null" json:"cashierId"`
	Cashier   Cashier `gorm:"foreignKey:CashierId" json:"-"`

	AmountDue    float64 `gorm:"not null" json:"amountDue"`
	AmountPaid   float64 `gorm:"not null" json:"amountPaid"`
	ChangeAmount float64 `gorm:"not null;default:0" json:"changeAmount"`
	Method       string  `gorm:"size:40;default:'cash'" json:"method"`
}
