package models

import "gorm.io/gorm"

// Review is a customer review of a product. One review per (owner, product).
type Review struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID  string `json:"product_id" gorm:"index;type:varchar(36)" validate:"required"`
	OwnerID    string `json:"owner_id" gorm:"index;type:varchar(100)" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"omitempty,max=1000"`
	gorm.Model        // CreatedAt, UpdatedAt, DeletedAt
}
