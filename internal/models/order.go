package models

import "time"

// OrderItem is a frozen record of one charged line: what was paid per unit
// at materialization time, immune to later catalog changes.
type OrderItem struct {
	ID             uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID        string `json:"-" gorm:"index;type:varchar(36)"`
	ProductID      string `json:"product_id" gorm:"type:varchar(36)"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitAmountPaid int64  `json:"unit_amount_paid"`
	Size           string `json:"size,omitempty"`
	Color          string `json:"color,omitempty"`
}

// Order represents a customer order materialized from a cart after a
// successful payment. TotalAmount is in minor currency units.
//
// PaymentRef is nullable on purpose: the unique index must only bind orders
// that actually carry a payment-session reference. Storing "" instead of NULL
// would make every ref-less order collide with the next one.
type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OwnerID     string      `json:"owner_id" gorm:"index;type:varchar(100)"`
	Items       []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount int64       `json:"total_amount"`
	Status      string      `json:"status"` // "pending" initially; later transitions belong to fulfillment
	PaymentRef  *string     `json:"payment_ref,omitempty" gorm:"uniqueIndex;type:varchar(100)"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
