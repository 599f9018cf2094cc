package controllers

import (
	"errors"
	"strconv"

	"foodie/pkg/resp"
	"foodie/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct{ Repo *repository.RestaurantRepository }

func NewRestaurantController(r *repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{Repo: r}
}

// GET /api/restaurants?featured=true&category=1&search=pizza
func (h *RestaurantController) List(c *gin.Context) {
	var f repository.RestaurantFilter
	f.Featured = c.Query("featured") == "true"
	if v := c.Query("category"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			f.CategoryID = uint(id)
		}
	}
	f.Search = c.Query("search")

	out, err := h.Repo.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := h.Repo.GetWithMenu(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}
