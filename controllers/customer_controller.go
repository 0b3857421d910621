package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CardozoMartin/distri-back/models"
	"github.com/CardozoMartin/distri-back/services"
)

// CustomerController handles HTTP requests for the customer registry.
type CustomerController struct {
	service services.CustomerService
}

func NewCustomerController(service services.CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

// GET /api/clientes
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, serr := cc.service.GetAllCustomers(c.Request.Context())
	if serr != nil {
		respondError(c, "Error al obtener los clientes", serr)
		return
	}
	respondOK(c, http.StatusOK, "", customers)
}

// GET /api/clientes/:id
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	customer, serr := cc.service.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if serr != nil {
		respondError(c, "Error al obtener el cliente", serr)
		return
	}
	respondOK(c, http.StatusOK, "", customer)
}

// GET /api/clientes/phone/:phone
func (cc *CustomerController) GetCustomerByPhone(c *gin.Context) {
	customer, serr := cc.service.GetCustomerByPhone(c.Request.Context(), c.Param("phone"))
	if serr != nil {
		respondError(c, "Error al obtener el cliente", serr)
		return
	}
	respondOK(c, http.StatusOK, "", customer)
}

// GET /api/clientes/email/:email
func (cc *CustomerController) GetCustomerByEmail(c *gin.Context) {
	customer, serr := cc.service.GetCustomerByEmail(c.Request.Context(), c.Param("email"))
	if serr != nil {
		respondError(c, "Error al obtener el cliente", serr)
		return
	}
	respondOK(c, http.StatusOK, "", customer)
}

// GET /api/clientes/dni/:dni
func (cc *CustomerController) GetCustomerByDNI(c *gin.Context) {
	customer, serr := cc.service.GetCustomerByDNI(c.Request.Context(), c.Param("dni"))
	if serr != nil {
		respondError(c, "Error al obtener el cliente", serr)
		return
	}
	respondOK(c, http.StatusOK, "", customer)
}

// POST /api/clientes
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Error al crear el cliente", err)
		return
	}

	customer, serr := cc.service.CreateCustomer(c.Request.Context(), &req)
	if serr != nil {
		respondError(c, "Error al crear el cliente", serr)
		return
	}
	respondOK(c, http.StatusCreated, "Cliente creado exitosamente", customer)
}

// PUT /api/clientes/:id
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var req models.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Error al actualizar el cliente", err)
		return
	}

	customer, serr := cc.service.UpdateCustomer(c.Request.Context(), c.Param("id"), &req)
	if serr != nil {
		respondError(c, "Error al actualizar el cliente", serr)
		return
	}
	respondOK(c, http.StatusOK, "Cliente actualizado exitosamente", customer)
}

// DELETE /api/clientes/:id
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	if serr := cc.service.DeleteCustomer(c.Request.Context(), c.Param("id")); serr != nil {
		respondError(c, "Error al eliminar el cliente", serr)
		return
	}
	respondOK(c, http.StatusOK, "Cliente eliminado exitosamente", nil)
}
