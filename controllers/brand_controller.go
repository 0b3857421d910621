package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CardozoMartin/distri-back/models"
	"github.com/CardozoMartin/distri-back/services"
)

// BrandController handles HTTP requests for drink brands.
type BrandController struct {
	service services.BrandService
}

func NewBrandController(service services.BrandService) *BrandController {
	return &BrandController{service: service}
}

// GET /api/marcas
func (bc *BrandController) GetAllBrands(c *gin.Context) {
	brands, serr := bc.service.GetAllBrands(c.Request.Context())
	if serr != nil {
		respondError(c, "Error al obtener las marcas", serr)
		return
	}
	respondOK(c, http.StatusOK, "", brands)
}

// GET /api/marcas/:id
func (bc *BrandController) GetBrandByID(c *gin.Context) {
	brand, serr := bc.service.GetBrandByID(c.Request.Context(), c.Param("id"))
	if serr != nil {
		respondError(c, "Error al obtener la marca", serr)
		return
	}
	respondOK(c, http.StatusOK, "", brand)
}

// POST /api/marcas
func (bc *BrandController) CreateBrand(c *gin.Context) {
	var req models.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Error al crear la marca", err)
		return
	}

	brand, serr := bc.service.CreateBrand(c.Request.Context(), &req)
	if serr != nil {
		respondError(c, "Error al crear la marca", serr)
		return
	}
	respondOK(c, http.StatusCreated, "Marca creada exitosamente", brand)
}

// PUT /api/marcas/:id
func (bc *BrandController) UpdateBrand(c *gin.Context) {
	var req models.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Error al actualizar la marca", err)
		return
	}

	brand, serr := bc.service.UpdateBrand(c.Request.Context(), c.Param("id"), &req)
	if serr != nil {
		respondError(c, "Error al actualizar la marca", serr)
		return
	}
	respondOK(c, http.StatusOK, "Marca actualizada exitosamente", brand)
}

// DELETE /api/marcas/:id
func (bc *BrandController) DeleteBrand(c *gin.Context) {
	if serr := bc.service.DeleteBrand(c.Request.Context(), c.Param("id")); serr != nil {
		respondError(c, "Error al eliminar la marca", serr)
		return
	}
	respondOK(c, http.StatusOK, "Marca eliminada exitosamente", nil)
}
