package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CardozoMartin/distri-back/models"
	"github.com/CardozoMartin/distri-back/services"
)

// DrinkController handles HTTP requests for the catalog.
type DrinkController struct {
	service services.DrinkService
}

func NewDrinkController(service services.DrinkService) *DrinkController {
	return &DrinkController{service: service}
}

// GetAllDrinks lists the catalog.
// GET /api/bebidas
func (dc *DrinkController) GetAllDrinks(c *gin.Context) {
	drinks, serr := dc.service.GetAllDrinks(c.Request.Context())
	if serr != nil {
		respondError(c, "Error al obtener las bebidas", serr)
		return
	}
	respondOK(c, http.StatusOK, "", drinks)
}

// GetDrinkByID returns one drink.
// GET /api/bebidas/:id
func (dc *DrinkController) GetDrinkByID(c *gin.Context) {
	drink, serr := dc.service.GetDrinkByID(c.Request.Context(), c.Param("id"))
	if serr != nil {
		respondError(c, "Error al obtener la bebida", serr)
		return
	}
	respondOK(c, http.StatusOK, "", drink)
}

// GetDrinksByBrand lists the drinks of one brand.
// GET /api/bebidas/marca/:name
func (dc *DrinkController) GetDrinksByBrand(c *gin.Context) {
	drinks, serr := dc.service.GetDrinksByBrand(c.Request.Context(), c.Param("name"))
	if serr != nil {
		respondError(c, "Error al obtener las bebidas", serr)
		return
	}
	respondOK(c, http.StatusOK, "", drinks)
}

// CreateDrink adds a drink to the catalog.
// POST /api/bebidas
func (dc *DrinkController) CreateDrink(c *gin.Context) {
	var req models.CreateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Error al crear la bebida", err)
		return
	}

	drink, serr := dc.service.CreateDrink(c.Request.Context(), &req)
	if serr != nil {
		respondError(c, "Error al crear la bebida", serr)
		return
	}
	respondOK(c, http.StatusCreated, "Bebida creada exitosamente", drink)
}

// UpdateDrink partially updates a drink.
// PUT /api/bebidas/:id
func (dc *DrinkController) UpdateDrink(c *gin.Context) {
	var req models.UpdateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Error al actualizar la bebida", err)
		return
	}

	drink, serr := dc.service.UpdateDrink(c.Request.Context(), c.Param("id"), &req)
	if serr != nil {
		respondError(c, "Error al actualizar la bebida", serr)
		return
	}
	respondOK(c, http.StatusOK, "Bebida actualizada exitosamente", drink)
}

// DeleteDrink removes a drink.
// DELETE /api/bebidas/:id
func (dc *DrinkController) DeleteDrink(c *gin.Context) {
	if serr := dc.service.DeleteDrink(c.Request.Context(), c.Param("id")); serr != nil {
		respondError(c, "Error al eliminar la bebida", serr)
		return
	}
	respondOK(c, http.StatusOK, "Bebida eliminada exitosamente", nil)
}

// ToggleDrinkState flips the drink's active flag (logical delete).
// PATCH /api/bebidas/:id/state
func (dc *DrinkController) ToggleDrinkState(c *gin.Context) {
	drink, serr := dc.service.ToggleDrinkState(c.Request.Context(), c.Param("id"))
	if serr != nil {
		respondError(c, "Error al cambiar el estado de la bebida", serr)
		return
	}
	respondOK(c, http.StatusOK, "Estado de la bebida actualizado", drink)
}
