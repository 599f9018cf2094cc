package repository

import (
	"foodie/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListWithMenu returns the user's cart lines oldest-first with their menu
// items resolved. A line whose menu item was deleted comes back with a
// zero-valued MenuItem; callers decide how to surface that. Pass a tx handle
// to read inside a transaction.
func (r *CartRepository) ListWithMenu(db *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := db.Where("user_id = ?", userID).
		Preload("MenuItem").
		Preload("MenuItem.Restaurant").
		Order("created_at ASC, id ASC").
		Find(&items).Error
	return items, err
}

// FindLine looks up the user's line for a menu item (merge target on add).
func (r *CartRepository) FindLine(db *gorm.DB, userID, menuItemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := db.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// GetForUser fetches a line by id scoped to its owner, so another user's line
// is indistinguishable from a missing one.
func (r *CartRepository) GetForUser(db *gorm.DB, userID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := db.Where("id = ? AND user_id = ?", itemID, userID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) Create(db *gorm.DB, it *entity.CartItem) error {
	return db.Create(it).Error
}

func (r *CartRepository) Save(db *gorm.DB, it *entity.CartItem) error {
	return db.Save(it).Error
}

// RemoveForUser deletes one line and reports how many rows went away, so the
// caller can tell a repeat delete from a successful one.
func (r *CartRepository) RemoveForUser(tx *gorm.DB, userID, itemID uint) (int64, error) {
	res := tx.Where("id = ? AND user_id = ?", itemID, userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

// ClearForUser deletes every line for the user. Checkout compares the count
// against the lines it read to detect concurrent cart mutation.
func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) (int64, error) {
	res := tx.Where("user_id = ?", userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}
