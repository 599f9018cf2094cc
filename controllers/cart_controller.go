package controllers

import (
	"strconv"

	"foodie/pkg/resp"
	"foodie/services"
	"foodie/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	view, err := h.Svc.Get(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /api/cart  body: { menuItemId, quantity }
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	// quantity is a pointer so an absent field defaults to 1 while an
	// explicit 0 still reaches validation and is rejected
	var body struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
		Quantity   *int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	quantity := 1
	if body.Quantity != nil {
		quantity = *body.Quantity
	}

	line, err := h.Svc.Add(uid, body.MenuItemID, quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, line)
}

// PUT /api/cart/:id  body: { quantity }
func (h *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}
	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := h.Svc.UpdateQty(uid, uint(id), body.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, line)
}

// DELETE /api/cart/:id
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}
	if err := h.Svc.Remove(uid, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /api/cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := h.Svc.Clear(uid); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
