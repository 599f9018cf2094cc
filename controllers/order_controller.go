package controllers

import (
	"strconv"

	"foodie/entity"
	"foodie/pkg/resp"
	"foodie/services"
	"foodie/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// GET /api/orders
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := h.Svc.ListForUser(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.GetForUser(uid, uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/orders  body: { deliveryAddress }
func (h *OrderController) Place(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	// missing address is stored as empty string, not rejected
	var body struct {
		DeliveryAddress string `json:"deliveryAddress"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.PlaceOrder(uid, body.DeliveryAddress)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, order)
}

// PATCH /api/orders/:id/status  body: { status } — fulfillment tooling
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	status, ok := entity.ParseOrderStatus(body.Status)
	if !ok {
		resp.BadRequest(c, "unknown order status")
		return
	}

	if err := h.Svc.AdvanceStatus(uint(id), status); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": status})
}
