package repository

import (
	"foodie/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItems(tx *gorm.DB, items []entity.OrderItem) error {
	return tx.Create(&items).Error
}

func (r *OrderRepository) GetOrder(db *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := db.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetWithItemsForUser loads an order and its lines, scoped to the owner.
// Someone else's order id behaves exactly like a missing one.
func (r *OrderRepository) GetWithItemsForUser(db *gorm.DB, userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := db.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForUser returns the user's orders newest-first, lines included.
func (r *OrderRepository) ListForUser(db *gorm.DB, userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := db.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard moves an order from one status to another only if it is
// still in the expected status. Zero rows affected means a concurrent writer
// got there first or the order is elsewhere in the machine.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
