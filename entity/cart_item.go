package entity

import (
	"time"
)

// CartItem is one live cart line: (user, menu item, quantity). One row per
// (user, menu item) pair; adds merge into the existing row. Hard delete only,
// so clearing the cart at checkout leaves no tombstones behind the unique
// index.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID uint `gorm:"not null;uniqueIndex:idx_cart_user_menu_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"not null;uniqueIndex:idx_cart_user_menu_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity int `gorm:"not null;check:quantity >= 1" json:"quantity"`
}
