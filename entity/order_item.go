package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a frozen copy of a cart line taken at checkout. Name and Price
// are snapshots of the menu item at that moment; MenuItemID is kept for
// reference only and is never re-resolved.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint    `json:"menuItemId"`
	Name       string  `gorm:"size:150;not null" json:"name"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	Price      float64 `gorm:"not null" json:"price"`
}
