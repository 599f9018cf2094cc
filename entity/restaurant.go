package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string  `gorm:"not null" json:"name"`
	ImageURL     string  `json:"imageUrl"`
	Cuisine      string  `json:"cuisine"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`
	DeliveryFee  float64 `json:"deliveryFee"`
	MinOrder     float64 `json:"minOrder"`
	IsFeatured   bool    `json:"isFeatured"`
	Address      string  `json:"address"`

	CategoryID uint      `json:"categoryId"`
	Category   *Category `json:"category,omitempty"`

	MenuItems []MenuItem `json:"menuItems,omitempty"`
	Orders    []Order    `json:"-"`
}
