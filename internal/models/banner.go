package models

import "gorm.io/gorm"

// Banner is a storefront promo banner, plain CRUD data.
type Banner struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string `json:"title" validate:"required,min=1,max=100"`
	ImageString string `json:"image_string" validate:"required,url"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Link        string `json:"link" validate:"omitempty,url"`
	gorm.Model
}
