package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`

	Orders    []Order    `json:"-"`
	CartItems []CartItem `json:"-"`
}
