package repository

import (
	"foodie/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// ListByRestaurant orders popular items first, then alphabetically.
func (r *MenuRepository) ListByRestaurant(restaurantID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("is_popular DESC, name ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) Get(db *gorm.DB, id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) GetWithRestaurant(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Restaurant").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
