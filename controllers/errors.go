package controllers

import (
	"errors"

	"foodie/pkg/resp"
	"foodie/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service sentinels onto HTTP statuses. Ownership failures
// come through as not-found so other users' data stays invisible.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrUserNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrInvalidStatus):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrMenuItemGone),
		errors.Is(err, services.ErrCheckoutConflict),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrEmailTaken):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
