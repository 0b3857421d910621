package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CardozoMartin/distri-back/services"
)

// The storefront speaks a {success, message, data|error} envelope; every
// handler answers with it.

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func respondError(c *gin.Context, message string, serr *services.ServiceError) {
	c.JSON(serr.StatusCode, gin.H{
		"success": false,
		"message": message,
		"error":   serr,
	})
}

func respondBadRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
