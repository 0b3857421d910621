package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CardozoMartin/distri-back/models"
	"github.com/CardozoMartin/distri-back/services"
)

// EmployeeController handles HTTP requests for the employee registry.
type EmployeeController struct {
	service services.EmployeeService
}

func NewEmployeeController(service services.EmployeeService) *EmployeeController {
	return &EmployeeController{service: service}
}

// GET /api/empleados
func (ec *EmployeeController) GetAllEmployees(c *gin.Context) {
	employees, serr := ec.service.GetAllEmployees(c.Request.Context())
	if serr != nil {
		respondError(c, "Error al obtener los empleados", serr)
		return
	}
	respondOK(c, http.StatusOK, "", employees)
}

// GET /api/empleados/:id
func (ec *EmployeeController) GetEmployeeByID(c *gin.Context) {
	employee, serr := ec.service.GetEmployeeByID(c.Request.Context(), c.Param("id"))
	if serr != nil {
		respondError(c, "Error al obtener el empleado", serr)
		return
	}
	respondOK(c, http.StatusOK, "", employee)
}

// POST /api/empleados
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Error al crear el empleado", err)
		return
	}

	employee, serr := ec.service.CreateEmployee(c.Request.Context(), &req)
	if serr != nil {
		respondError(c, "Error al crear el empleado", serr)
		return
	}
	respondOK(c, http.StatusCreated, "Empleado creado exitosamente", employee)
}

// PUT /api/empleados/:id
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	var req models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Error al actualizar el empleado", err)
		return
	}

	employee, serr := ec.service.UpdateEmployee(c.Request.Context(), c.Param("id"), &req)
	if serr != nil {
		respondError(c, "Error al actualizar el empleado", serr)
		return
	}
	respondOK(c, http.StatusOK, "Empleado actualizado exitosamente", employee)
}

// DELETE /api/empleados/:id
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	if serr := ec.service.DeleteEmployee(c.Request.Context(), c.Param("id")); serr != nil {
		respondError(c, "Error al eliminar el empleado", serr)
		return
	}
	respondOK(c, http.StatusOK, "Empleado eliminado exitosamente", nil)
}
