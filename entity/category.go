package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name  string `gorm:"not null" json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`

	Restaurants []Restaurant `json:"restaurants,omitempty"`
}
