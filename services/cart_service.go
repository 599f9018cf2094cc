package services

import (
	"errors"

	"foodie/entity"
	"foodie/repository"
	"foodie/utils"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type CartLine struct {
	ID       uint            `json:"id"`
	Quantity int             `json:"quantity"`
	MenuItem entity.MenuItem `json:"menuItem"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// Get returns the cart lines oldest-first with the total computed from
// current catalog prices on every read; nothing is cached. A line whose menu
// item no longer exists fails the whole read with ErrMenuItemGone.
func (s *CartService) Get(userID uint) (*CartView, error) {
	items, err := s.CartRepo.ListWithMenu(s.DB, userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: make([]CartLine, 0, len(items))}
	var total float64
	for _, it := range items {
		if it.MenuItem.ID == 0 {
			return nil, ErrMenuItemGone
		}
		total += it.MenuItem.Price * float64(it.Quantity)
		view.Items = append(view.Items, CartLine{ID: it.ID, Quantity: it.Quantity, MenuItem: it.MenuItem})
	}
	view.Total = utils.Round2(total)
	return view, nil
}

// Add puts quantity of a menu item into the cart. If the user already has a
// line for that item the quantities merge; it never overwrites.
func (s *CartService) Add(userID, menuItemID uint, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var out *entity.CartItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.MenuRepo.Get(tx, menuItemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuItemNotFound
			}
			return err
		}

		existing, err := s.CartRepo.FindLine(tx, userID, menuItemID)
		if err == nil {
			existing.Quantity += quantity
			if err := s.CartRepo.Save(tx, existing); err != nil {
				return err
			}
			out = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		line := &entity.CartItem{UserID: userID, MenuItemID: menuItemID, Quantity: quantity}
		if err := s.CartRepo.Create(tx, line); err != nil {
			return err
		}
		out = line
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateQty overwrites a line's quantity. A quantity below 1 is rejected, not
// treated as a delete; the line stays untouched.
func (s *CartService) UpdateQty(userID, itemID uint, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var out *entity.CartItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		line, err := s.CartRepo.GetForUser(tx, userID, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartItemNotFound
			}
			return err
		}
		line.Quantity = quantity
		if err := s.CartRepo.Save(tx, line); err != nil {
			return err
		}
		out = line
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes one line. Removing a line that is already gone reports
// ErrCartItemNotFound rather than succeeding quietly.
func (s *CartService) Remove(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.CartRepo.RemoveForUser(tx, userID, itemID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
}

// Clear empties the cart. An already-empty cart is fine here, unlike Remove.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		_, err := s.CartRepo.ClearForUser(tx, userID)
		return err
	})
}
