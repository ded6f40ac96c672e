package models

import (
	"time"

	"gorm.io/gorm"
)

// FlashSale is a time-bounded promotion applying one discount percentage to
// a set of products.
type FlashSale struct {
	ID                 string             `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name               string             `json:"name" validate:"required,min=3,max=100"`
	Description        string             `json:"description" validate:"omitempty,max=500"`
	StartDate          time.Time          `json:"start_date" validate:"required"`
	EndDate            time.Time          `json:"end_date" validate:"required,gtfield=StartDate"`
	DiscountPercentage int                `json:"discount_percentage" validate:"required,min=1,max=99"`
	IsActive           bool               `json:"is_active"`
	Products           []FlashSaleProduct `json:"products" gorm:"foreignKey:FlashSaleID"`
	gorm.Model
}

// FlashSaleProduct records a product's membership in a flash sale together
// with the discounted price computed when the sale was created.
type FlashSaleProduct struct {
	ID            uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	FlashSaleID   string `json:"-" gorm:"index;type:varchar(36)"`
	ProductID     string `json:"product_id" gorm:"index;type:varchar(36)"`
	DiscountPrice int64  `json:"discount_price"`
}
