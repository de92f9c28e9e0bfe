package model

import "time"

type Category struct {
	BaseModel
	Name     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Status   bool      `gorm:"not null" json:"status"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

type Slider struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);uniqueIndex;not null" json:"title"`
	Body        string `gorm:"type:text" json:"body"`
	Image       string `gorm:"type:varchar(255)" json:"image"`
	LinkTitle   string `gorm:"type:varchar(255)" json:"link_title"`
	LinkAddress string `gorm:"type:varchar(255)" json:"link_address"`
}

type Feature struct {
	BaseModel
	Title string `gorm:"type:varchar(255);uniqueIndex;not null" json:"title"`
	Body  string `gorm:"type:text" json:"body"`
	Icon  string `gorm:"type:varchar(255)" json:"icon"`
}

// Discount is a coupon code, exposed as /coupons
type Discount struct {
	BaseModel
	Code      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"code"`
	Percent   int       `gorm:"not null" json:"percent"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
