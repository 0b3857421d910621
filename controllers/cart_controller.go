package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CardozoMartin/distri-back/models"
	"github.com/CardozoMartin/distri-back/services"
)

// CartController handles HTTP requests for carts/orders.
type CartController struct {
	service services.CartService
}

func NewCartController(service services.CartService) *CartController {
	return &CartController{service: service}
}

// CreateCart creates an order.
// POST /api/cart
func (cc *CartController) CreateCart(c *gin.Context) {
	var req models.CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Error al crear el carrito", err)
		return
	}

	cart, serr := cc.service.CreateCart(c.Request.Context(), &req)
	if serr != nil {
		respondError(c, "Error al crear el carrito", serr)
		return
	}

	respondOK(c, http.StatusCreated, "Carrito creado exitosamente", cart)
}

// GetCartByID returns an order.
// GET /api/cart/:id
func (cc *CartController) GetCartByID(c *gin.Context) {
	cart, serr := cc.service.GetCartByID(c.Request.Context(), c.Param("id"))
	if serr != nil {
		respondError(c, "Error al obtener el carrito", serr)
		return
	}
	respondOK(c, http.StatusOK, "", cart)
}

// GetAllCarts returns every order.
// GET /api/cart
func (cc *CartController) GetAllCarts(c *gin.Context) {
	carts, serr := cc.service.GetAllCarts(c.Request.Context())
	if serr != nil {
		respondError(c, "Error al obtener los carritos", serr)
		return
	}
	respondOK(c, http.StatusOK, "", carts)
}

// GetCartsByCustomer returns a customer's orders.
// GET /api/cart/user/:userId
func (cc *CartController) GetCartsByCustomer(c *gin.Context) {
	carts, serr := cc.service.GetCartsByCustomerID(c.Request.Context(), c.Param("userId"))
	if serr != nil {
		respondError(c, "Error al obtener los carritos", serr)
		return
	}
	respondOK(c, http.StatusOK, "", carts)
}

// UpdateCart replaces the order's lines and/or fulfillment status.
// PUT /api/cart/:id
func (cc *CartController) UpdateCart(c *gin.Context) {
	var req models.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Error al actualizar el carrito", err)
		return
	}

	cart, serr := cc.service.UpdateCart(c.Request.Context(), c.Param("id"), &req)
	if serr != nil {
		respondError(c, "Error al actualizar el carrito", serr)
		return
	}
	respondOK(c, http.StatusOK, "Carrito actualizado exitosamente", cart)
}

// DeleteCart removes the order, restoring its reserved stock.
// DELETE /api/cart/:id
func (cc *CartController) DeleteCart(c *gin.Context) {
	if serr := cc.service.DeleteCart(c.Request.Context(), c.Param("id")); serr != nil {
		respondError(c, "Error al eliminar el carrito", serr)
		return
	}
	respondOK(c, http.StatusOK, "Carrito eliminado exitosamente", nil)
}

// CancelCart cancels the order, restoring its reserved stock.
// PUT /api/cart/:id/cancel
func (cc *CartController) CancelCart(c *gin.Context) {
	cart, serr := cc.service.CancelCart(c.Request.Context(), c.Param("id"))
	if serr != nil {
		respondError(c, "Error al cancelar el carrito", serr)
		return
	}
	respondOK(c, http.StatusOK, "Carrito cancelado exitosamente", cart)
}

// ProcessPayment records the payment method and marks the order paid.
// PUT /api/cart/:id/payment
func (cc *CartController) ProcessPayment(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Error al procesar el pago", err)
		return
	}

	cart, serr := cc.service.ProcessPayment(c.Request.Context(), c.Param("id"), req.PaymentMethod)
	if serr != nil {
		respondError(c, "Error al procesar el pago", serr)
		return
	}
	respondOK(c, http.StatusOK, "Pago procesado exitosamente", cart)
}

// MarkDelivered flags the order as delivered.
// PUT /api/cart/:id/changedelivery
func (cc *CartController) MarkDelivered(c *gin.Context) {
	cart, serr := cc.service.MarkDelivered(c.Request.Context(), c.Param("id"))
	if serr != nil {
		respondError(c, "Error al actualizar la entrega", serr)
		return
	}
	respondOK(c, http.StatusOK, "Entrega registrada exitosamente", cart)
}

// SetApproval records the admin accept/cancel decision and notifies the
// customer by email and WhatsApp.
// PUT /api/cart/:id/approval
func (cc *CartController) SetApproval(c *gin.Context) {
	var req models.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Error al actualizar el pedido", err)
		return
	}

	cart, serr := cc.service.SetApproval(c.Request.Context(), c.Param("id"), req.Decision)
	if serr != nil {
		respondError(c, "Error al actualizar el pedido", serr)
		return
	}
	respondOK(c, http.StatusOK, "Pedido actualizado exitosamente", cart)
}

// SalesForDay lists today's paid orders.
// GET /api/cart/sales/day
func (cc *CartController) SalesForDay(c *gin.Context) {
	carts, serr := cc.service.SalesForDay(c.Request.Context())
	if serr != nil {
		respondError(c, "Error al obtener las ventas", serr)
		return
	}
	respondOK(c, http.StatusOK, "", carts)
}

// DailySales returns today's totals.
// GET /api/cart/sales/daily
func (cc *CartController) DailySales(c *gin.Context) {
	summary, serr := cc.service.DailySales(c.Request.Context())
	if serr != nil {
		respondError(c, "Error al calcular las ventas", serr)
		return
	}
	respondOK(c, http.StatusOK, "", summary)
}

// SalesComparison returns today's totals next to yesterday's.
// GET /api/cart/sales/comparison
func (cc *CartController) SalesComparison(c *gin.Context) {
	comparison, serr := cc.service.SalesComparison(c.Request.Context())
	if serr != nil {
		respondError(c, "Error al calcular las ventas", serr)
		return
	}
	respondOK(c, http.StatusOK, "", comparison)
}

// MonthlySales returns the current month's totals.
// GET /api/cart/sales/monthly
func (cc *CartController) MonthlySales(c *gin.Context) {
	summary, serr := cc.service.MonthlySales(c.Request.Context())
	if serr != nil {
		respondError(c, "Error al calcular las ventas", serr)
		return
	}
	respondOK(c, http.StatusOK, "", summary)
}

// MonthlySalesComparison returns the current month's totals next to the
// previous month's.
// GET /api/cart/sales/monthly/comparison
func (cc *CartController) MonthlySalesComparison(c *gin.Context) {
	comparison, serr := cc.service.MonthlySalesComparison(c.Request.Context())
	if serr != nil {
		respondError(c, "Error al calcular las ventas", serr)
		return
	}
	respondOK(c, http.StatusOK, "", comparison)
}
