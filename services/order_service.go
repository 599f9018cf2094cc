package services

import (
	"errors"

	"foodie/entity"
	"foodie/repository"
	"foodie/utils"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo}
}

// PlaceOrder converts the user's cart into an order, all inside one
// transaction: read lines with current catalog prices, write the order and
// its frozen lines, clear the cart. Any failure rolls everything back and the
// cart stays as it was.
//
// Prices are resolved fresh at this moment; an item whose catalog price
// changed since it was added is charged at the new price, and the snapshot
// written to the order lines never changes again.
func (s *OrderService) PlaceOrder(userID uint, deliveryAddress string) (*entity.Order, error) {
	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListWithMenu(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		var total float64
		items := make([]entity.OrderItem, 0, len(lines))
		for _, ln := range lines {
			if ln.MenuItem.ID == 0 {
				return ErrMenuItemGone
			}
			total += ln.MenuItem.Price * float64(ln.Quantity)
			items = append(items, entity.OrderItem{
				MenuItemID: ln.MenuItemID,
				Name:       ln.MenuItem.Name,
				Quantity:   ln.Quantity,
				Price:      ln.MenuItem.Price,
			})
		}

		// The first line in creation order decides the restaurant. Mixed
		// carts are not validated; later lines from other restaurants ride
		// along under this attribution.
		first := lines[0].MenuItem
		var restaurantName string
		if first.Restaurant != nil {
			restaurantName = first.Restaurant.Name
		}

		order := entity.Order{
			UserID:          userID,
			RestaurantID:    first.RestaurantID,
			RestaurantName:  restaurantName,
			Total:           utils.Round2(total),
			Status:          entity.StatusConfirmed,
			DeliveryAddress: deliveryAddress,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := s.Repo.CreateOrderItems(tx, items); err != nil {
			return err
		}

		cleared, err := s.CartRepo.ClearForUser(tx, userID)
		if err != nil {
			return err
		}
		// Under isolation weaker than serializable a concurrent session may
		// have added or removed lines between our read and the clear. The
		// count mismatch aborts the transaction instead of losing the edit.
		if cleared != int64(len(lines)) {
			return ErrCheckoutConflict
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Fresh read after commit so the caller sees exactly the durable state.
	return s.GetForUser(userID, orderID)
}

// GetForUser returns the order with its lines only if the caller owns it.
// Another user's order id looks like a missing order, never a forbidden one.
func (s *OrderService) GetForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetWithItemsForUser(s.DB, userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(s.DB, userID)
}

// AdvanceStatus applies one state-machine step on behalf of fulfillment
// tooling. Unknown values and illegal transitions are rejected; the guarded
// update keeps two racing writers from both succeeding.
func (s *OrderService) AdvanceStatus(orderID uint, next entity.OrderStatus) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if !o.Status.CanTransition(next) {
			return ErrInvalidTransition
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}
