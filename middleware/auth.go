package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CardozoMartin/distri-back/services"
)

const (
	UserContextKey = "username"
	RoleContextKey = "role"
)

// AdminAuth validates the Bearer token on protected admin routes and
// stores the claims on the request context.
func AdminAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token no proporcionado"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Formato de token inválido"})
			c.Abort()
			return
		}

		claims, err := auth.VerifyAdminToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token inválido o expirado"})
			c.Abort()
			return
		}

		c.Set(UserContextKey, claims.Username)
		c.Set(RoleContextKey, claims.Role)
		c.Next()
	}
}
