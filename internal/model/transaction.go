package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction statuses
const (
	TransactionFailed     = 0
	TransactionSuccessful = 1
)

// Transaction is a payment attempt for an order
type Transaction struct {
	BaseModel
	UserID      uuid.UUID       `gorm:"type:uuid;index;not null" json:"user_id"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"order_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Token       string          `gorm:"type:varchar(255)" json:"token,omitempty"`
	TransID     string          `gorm:"type:varchar(255)" json:"trans_id,omitempty"`
	RequestFrom string          `gorm:"type:varchar(50)" json:"request_from,omitempty"`
	Status      int             `gorm:"index;not null;default:0" json:"status"`
}
