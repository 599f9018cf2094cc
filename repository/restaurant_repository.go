package repository

import (
	"foodie/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

type RestaurantFilter struct {
	Featured   bool
	CategoryID uint
	Search     string
}

func (r *RestaurantRepository) List(f RestaurantFilter) ([]entity.Restaurant, error) {
	db := r.DB.Preload("Category")
	if f.Featured {
		db = db.Where("is_featured = ?", true)
	}
	if f.CategoryID != 0 {
		db = db.Where("category_id = ?", f.CategoryID)
	}
	if f.Search != "" {
		db = db.Where("name LIKE ?", "%"+f.Search+"%")
	}

	var out []entity.Restaurant
	err := db.Order("rating DESC").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Get(db *gorm.DB, id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := db.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) GetWithMenu(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.Preload("Category").
		Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_popular DESC, name ASC")
		}).
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}
