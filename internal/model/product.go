package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	BaseModel
	Name           string              `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Slug           string              `gorm:"type:varchar(255);index" json:"slug"`
	CategoryID     uuid.UUID           `gorm:"type:uuid;index;not null" json:"category_id"`
	Category       *Category           `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	PrimaryImage   string              `gorm:"type:varchar(255)" json:"primary_image"`
	Description    string              `gorm:"type:text" json:"description"`
	Price          decimal.Decimal     `gorm:"type:decimal(20,2);not null" json:"price"`
	Quantity       int                 `gorm:"not null" json:"quantity"`
	Status         bool                `gorm:"not null" json:"status"`
	SalePrice      decimal.NullDecimal `gorm:"type:decimal(20,2)" json:"sale_price"`
	DateOnSaleFrom *time.Time          `json:"date_on_sale_from"`
	DateOnSaleTo   *time.Time          `json:"date_on_sale_to"`

	// Gallery
	Images []ProductImage `gorm:"foreignKey:ProductID" json:"images,omitempty"`
}

// IsSale reports whether the sale price applies at now
func (p *Product) IsSale(now time.Time) bool {
	if !p.SalePrice.Valid || !p.SalePrice.Decimal.IsPositive() {
		return false
	}
	if p.DateOnSaleFrom == nil || p.DateOnSaleTo == nil {
		return false
	}
	return p.DateOnSaleFrom.Before(now) && p.DateOnSaleTo.After(now)
}

// GalleryNames returns the stored file names of the gallery images
func (p *Product) GalleryNames() []string {
	names := make([]string, len(p.Images))
	for i, img := range p.Images {
		names[i] = img.Image
	}
	return names
}

// ProductImage is one gallery file of a product
type ProductImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Image     string    `gorm:"type:varchar(255);not null" json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

func (img *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if img.ID == uuid.Nil {
		img.ID = uuid.New()
	}
	return nil
}
