package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses
const (
	OrderPending   = 0
	OrderPaid      = 1
	OrderShipped   = 2
	OrderDelivered = 3
	OrderCancelled = 4
)

type Order struct {
	BaseModel
	UserID         uuid.UUID       `gorm:"type:uuid;index;not null" json:"user_id"`
	AddressID      uuid.UUID       `gorm:"type:uuid;index;not null" json:"address_id"`
	Address        *UserAddress    `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	CouponID       *uuid.UUID      `gorm:"type:uuid" json:"coupon_id,omitempty"`
	Status         int             `gorm:"not null;default:0" json:"status"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"total_amount"`
	DeliveryAmount decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"delivery_amount"`
	CouponAmount   decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"coupon_amount"`
	PayingAmount   decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"paying_amount"`
	PaymentStatus  int             `gorm:"not null;default:0" json:"payment_status"`
	Items          []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null" json:"order_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Price     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"subtotal"`
}

// UserAddress is a shipping address owned by a customer
type UserAddress struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Title      string    `gorm:"type:varchar(255)" json:"title"`
	Cellphone  string    `gorm:"type:varchar(20)" json:"cellphone"`
	PostalCode string    `gorm:"type:varchar(20)" json:"postal_code"`
	Province   string    `gorm:"type:varchar(100)" json:"province"`
	City       string    `gorm:"type:varchar(100)" json:"city"`
	Address    string    `gorm:"type:text" json:"address"`
}
