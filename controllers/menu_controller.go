package controllers

import (
	"errors"
	"strconv"

	"foodie/pkg/resp"
	"foodie/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct{ Repo *repository.MenuRepository }

func NewMenuController(r *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: r}
}

// GET /api/restaurants/:id/menu
func (h *MenuController) ListByRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	items, err := h.Repo.ListByRestaurant(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	item, err := h.Repo.GetWithRestaurant(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}
