package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/shopease/shopease/internal/auth"
	"github.com/shopease/shopease/internal/handlers"
)

type Deps struct {
	ProductHandler  *handlers.ProductHandler
	CartHandler     *handlers.CartHandler
	AuthHandler     *handlers.AuthHandler
	CheckoutHandler *handlers.CheckoutHandler
	JWTSecret       []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/logout", d.AuthHandler.Logout)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/deals", d.ProductHandler.GetDeals)
	products.GET("/:id", d.ProductHandler.GetProduct)
	v1.GET("/categories", d.ProductHandler.GetCategories)

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PATCH("/:id", d.CartHandler.UpdateQuantity)
	cart.DELETE("/:id", d.CartHandler.RemoveFromCart)
	cart.DELETE("", d.CartHandler.ClearCart)

	// Checkout does not depend on auth state; order history does.
	v1.POST("/checkout", d.CheckoutHandler.PlaceOrder)
	orders := v1.Group("/orders", auth.RequireLogin(d.JWTSecret))
	orders.GET("", d.CheckoutHandler.ListOrders)
	orders.GET("/:id", d.CheckoutHandler.GetOrder)

	admin := v1.Group("/admin", auth.RequireLogin(d.JWTSecret), auth.AdminOnly)
	admin.POST("/products", d.ProductHandler.CreateProduct)
	admin.PATCH("/products/:id", d.ProductHandler.PatchProduct)
	admin.DELETE("/products/:id", d.ProductHandler.DeleteProduct)
}
