package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel handles ID (UUID) and audit columns. Rows are hard deleted.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CreatedBy string `gorm:"type:varchar(255)" json:"created_by,omitempty"`
	UpdatedBy string `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
}

// BeforeCreate assigns a UUID unless the caller already picked one
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return
}

// Tables lists every model handled by AutoMigrate, parents before children
func Tables() []interface{} {
	return []interface{}{
		&Privilege{}, &Role{}, &User{}, &UserAddress{},
		&Category{}, &Product{}, &ProductImage{},
		&Slider{}, &Feature{}, &Discount{},
		&Order{}, &OrderItem{}, &Transaction{},
		&AboutUs{}, &Footer{}, &ContactUs{},
	}
}
