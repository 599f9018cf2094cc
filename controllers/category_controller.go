package controllers

import (
	"errors"
	"strconv"

	"foodie/pkg/resp"
	"foodie/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct{ Repo *repository.CategoryRepository }

func NewCategoryController(r *repository.CategoryRepository) *CategoryController {
	return &CategoryController{Repo: r}
}

// GET /api/categories
func (h *CategoryController) List(c *gin.Context) {
	out, err := h.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/categories/:id
func (h *CategoryController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	cat, err := h.Repo.GetWithRestaurants(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}
