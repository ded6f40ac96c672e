package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog product. Prices are stored in minor currency
// units (cents), never floats.
type Product struct {
	ID            string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string     `json:"name" validate:"required,min=3,max=100"`
	Description   string     `json:"description" validate:"omitempty,max=500"`
	Price         int64      `json:"price" validate:"required,gt=0"`
	DiscountPrice *int64     `json:"discount_price,omitempty" validate:"omitempty,gt=0"`
	Images        []string   `json:"images" gorm:"serializer:json"`
	Sizes         []string   `json:"sizes" gorm:"serializer:json"`
	Colors        []string   `json:"colors" gorm:"serializer:json"`
	Stock         int        `json:"stock" validate:"gte=0"`
	IsFeatured    bool       `json:"is_featured"`
	IsSale        bool       `json:"is_sale"`
	SaleEndDate   *time.Time `json:"sale_end_date,omitempty"`
	gorm.Model               // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// PrimaryImage returns the first catalog image, or an empty string when the
// product has none. Cart lines snapshot this value.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
