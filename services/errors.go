package services

import "errors"

// Sentinel errors returned by the service layer. Controllers translate these
// with errors.Is; everything else is treated as a storage failure.
var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrOrderNotFound    = errors.New("order not found")

	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrCartEmpty       = errors.New("cart is empty")

	// ErrMenuItemGone means a cart line references a menu item that has been
	// deleted from the catalog since it was added. The cart is never silently
	// repaired; the caller has to see it.
	ErrMenuItemGone = errors.New("cart item references a deleted menu item")

	// ErrCheckoutConflict means the cart changed under a running checkout; the
	// whole transaction is rolled back.
	ErrCheckoutConflict = errors.New("cart changed during checkout")

	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("order status transition not allowed")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
