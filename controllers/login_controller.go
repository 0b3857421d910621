package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CardozoMartin/distri-back/services"
)

// LoginController handles admin authentication.
type LoginController struct {
	auth *services.AuthService
}

func NewLoginController(auth *services.AuthService) *LoginController {
	return &LoginController{auth: auth}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/login
func (lc *LoginController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Error al iniciar sesión", err)
		return
	}

	token, serr := lc.auth.Login(req.Username, req.Password)
	if serr != nil {
		respondError(c, "Error al iniciar sesión", serr)
		return
	}

	respondOK(c, http.StatusOK, "Inicio de sesión exitoso", gin.H{
		"token": token,
		"user":  gin.H{"username": req.Username, "role": "admin"},
	})
}
