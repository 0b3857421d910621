package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CardozoMartin/distri-back/controllers"
	"github.com/CardozoMartin/distri-back/middleware"
	"github.com/CardozoMartin/distri-back/services"
)

// Controllers groups every handler the router needs.
type Controllers struct {
	Carts     *controllers.CartController
	Drinks    *controllers.DrinkController
	Brands    *controllers.BrandController
	Customers *controllers.CustomerController
	Employees *controllers.EmployeeController
	Login     *controllers.LoginController
}

// Register mounts all API routes on the router. Write operations on the
// catalog and the registries require an admin token; the storefront cart
// endpoints stay public.
func Register(router *gin.Engine, ctrl Controllers, auth *services.AuthService) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	admin := middleware.AdminAuth(auth)

	api.POST("/login", ctrl.Login.Login)

	cart := api.Group("/cart")
	{
		cart.GET("", ctrl.Carts.GetAllCarts)
		cart.POST("", ctrl.Carts.CreateCart)
		cart.GET("/sales/day", ctrl.Carts.SalesForDay)
		cart.GET("/sales/daily", ctrl.Carts.DailySales)
		cart.GET("/sales/comparison", ctrl.Carts.SalesComparison)
		cart.GET("/sales/monthly", ctrl.Carts.MonthlySales)
		cart.GET("/sales/monthly/comparison", ctrl.Carts.MonthlySalesComparison)
		cart.GET("/user/:userId", ctrl.Carts.GetCartsByCustomer)
		cart.GET("/:id", ctrl.Carts.GetCartByID)
		cart.PUT("/:id", ctrl.Carts.UpdateCart)
		cart.DELETE("/:id", ctrl.Carts.DeleteCart)
		cart.PUT("/:id/payment", ctrl.Carts.ProcessPayment)
		cart.PUT("/:id/changedelivery", ctrl.Carts.MarkDelivered)
		cart.PUT("/:id/cancel", ctrl.Carts.CancelCart)
		cart.PUT("/:id/approval", admin, ctrl.Carts.SetApproval)
	}

	drinks := api.Group("/bebidas")
	{
		drinks.GET("", ctrl.Drinks.GetAllDrinks)
		drinks.GET("/:id", ctrl.Drinks.GetDrinkByID)
		drinks.GET("/marca/:name", ctrl.Drinks.GetDrinksByBrand)
		drinks.POST("", admin, ctrl.Drinks.CreateDrink)
		drinks.PUT("/:id", admin, ctrl.Drinks.UpdateDrink)
		drinks.DELETE("/:id", admin, ctrl.Drinks.DeleteDrink)
		drinks.PATCH("/:id/state", admin, ctrl.Drinks.ToggleDrinkState)
	}

	brands := api.Group("/marcas")
	{
		brands.GET("", ctrl.Brands.GetAllBrands)
		brands.GET("/:id", ctrl.Brands.GetBrandByID)
		brands.POST("", admin, ctrl.Brands.CreateBrand)
		brands.PUT("/:id", admin, ctrl.Brands.UpdateBrand)
		brands.DELETE("/:id", admin, ctrl.Brands.DeleteBrand)
	}

	customers := api.Group("/clientes")
	{
		customers.GET("", admin, ctrl.Customers.GetAllCustomers)
		customers.GET("/phone/:phone", ctrl.Customers.GetCustomerByPhone)
		customers.GET("/email/:email", ctrl.Customers.GetCustomerByEmail)
		customers.GET("/dni/:dni", ctrl.Customers.GetCustomerByDNI)
		customers.GET("/:id", ctrl.Customers.GetCustomerByID)
		customers.POST("", ctrl.Customers.CreateCustomer)
		customers.PUT("/:id", ctrl.Customers.UpdateCustomer)
		customers.DELETE("/:id", admin, ctrl.Customers.DeleteCustomer)
	}

	employees := api.Group("/empleados", admin)
	{
		employees.GET("", ctrl.Employees.GetAllEmployees)
		employees.GET("/:id", ctrl.Employees.GetEmployeeByID)
		employees.POST("", ctrl.Employees.CreateEmployee)
		employees.PUT("/:id", ctrl.Employees.UpdateEmployee)
		employees.DELETE("/:id", ctrl.Employees.DeleteEmployee)
	}
}
