package controllers

import (
	"foodie/pkg/resp"
	"foodie/services"
	"foodie/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /api/auth/register
func (h *AuthController) Register(c *gin.Context) {
	var body struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Register(body.Name, body.Email, body.Password, body.Phone, body.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, gin.H{"token": token, "user": user})
}

// POST /api/auth/login
func (h *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(body.Email, body.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /api/auth/me
func (h *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	user, err := h.Svc.Me(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, user)
}
