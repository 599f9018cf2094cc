package entity

import (
	"gorm.io/gorm"
)

// Order is immutable once written, except Status which advances through the
// state machine in order_status.go. RestaurantName and Total are captured at
// checkout and never track later catalog edits.
type Order struct {
	gorm.Model
	UserID uint `gorm:"not null" json:"userId"`
	User   User `json:"-"`

	RestaurantID   uint       `json:"restaurantId"`
	Restaurant     Restaurant `json:"-"`
	RestaurantName string     `gorm:"size:150" json:"restaurantName"`

	Total           float64     `gorm:"not null" json:"total"`
	Status          OrderStatus `gorm:"size:20;not null;default:pending" json:"status"`
	DeliveryAddress string      `json:"deliveryAddress"`

	Items []OrderItem `json:"items"`
}
