package entity

// MenuItem is catalog data, read-only from the cart/order engine's point of
// view. No soft delete: a removed item must actually be gone so a cart line
// pointing at it is detectable as a dangling reference.
type MenuItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:150;not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null;check:price >= 0" json:"price"`
	ImageURL    string  `gorm:"size:500" json:"imageUrl"`
	IsPopular   bool    `json:"isPopular"`

	RestaurantID uint        `gorm:"not null" json:"restaurantId"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"`
}
