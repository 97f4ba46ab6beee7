package routes

import (
	"restaurant-order-api/handlers"
	"restaurant-order-api/middleware"
	"restaurant-order-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.POST("/auth/logout", handlers.Logout)

		// Catalog browsing
		auth.GET("/foods", handlers.GetFoodItems)
		auth.GET("/foods/:foodId", handlers.FindFoodByID)

		// Cart
		auth.GET("/cart", handlers.GetCart)
		auth.POST("/cart/items", handlers.AddCartItem)
		auth.PATCH("/cart/items/:foodId", handlers.UpdateCartQuantity)
		auth.DELETE("/cart/items/:foodId", handlers.RemoveCartItem)
		auth.DELETE("/cart", handlers.ClearCart)

		// Checkout
		auth.POST("/orders", handlers.SubmitOrder)
		auth.GET("/orders", handlers.GetMyOrders)
	}

	// ── Staff routes (catalog management + fulfillment) ────────────
	staff := r.Group("/api")
	staff.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleManager, models.RoleEmployee))
	{
		staff.POST("/foods", handlers.CreateFoodItem)
		staff.PATCH("/foods/:foodId", handlers.UpdateFoodItem)
		staff.DELETE("/foods/:foodId", handlers.DeleteFoodItem)

		staff.GET("/staff/orders", handlers.ListOrders)
		staff.PATCH("/staff/orders/:id/checked", handlers.SetOrderChecked)
	}
}
