package repository

import (
	"foodie/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("id ASC").Find(&out).Error
	return out, err
}

func (r *CategoryRepository) GetWithRestaurants(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.Preload("Restaurants").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
