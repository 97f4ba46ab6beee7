package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-order-api/cart"
	"restaurant-order-api/config"
	"restaurant-order-api/httperr"
	"restaurant-order-api/middleware"
	"restaurant-order-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// carts returns the per-user cart store backed by the main database.
func carts() cart.Store {
	return cart.NewGormStore(config.DB)
}

type AddToCartRequest struct {
	FoodID         uint             `json:"id" binding:"required"`
	TasteType      models.TasteType `json:"tasteType"`
	VegToppings    []string         `json:"vegToppings"`
	NonVegToppings []string         `json:"nonVegToppings"`
	UserComment    string           `json:"userComment"`
}

type UpdateCartQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// GetCart returns the caller's cart lines and running total
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	lines, err := carts().Load(userID)
	if err != nil {
		httperr.Abort(c, httperr.Transport("Failed to load cart", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cartItems":  lines,
		"totalPrice": cart.Total(lines),
	})
}

// AddCartItem adds a catalog item to the caller's cart. Adding an item
// already in the cart bumps its quantity and replaces the customization
// with the latest selection.
func AddCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.Validation(err.Error()))
		return
	}
	if req.TasteType != "" && !models.ValidTaste(req.TasteType) {
		httperr.Abort(c, httperr.Validation("Unknown taste type: "+string(req.TasteType)))
		return
	}

	var item models.FoodItem
	if err := config.DB.First(&item, req.FoodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Abort(c, httperr.NotFound("Food item not found"))
			return
		}
		httperr.Abort(c, httperr.Transport("Failed to load food item", err))
		return
	}

	lines, err := carts().Load(userID)
	if err != nil {
		httperr.Abort(c, httperr.Transport("Failed to load cart", err))
		return
	}

	lines = cart.AddOrIncrement(lines, item, cart.Customization{
		TasteType:      req.TasteType,
		VegToppings:    models.StringList(req.VegToppings),
		NonVegToppings: models.StringList(req.NonVegToppings),
		UserComment:    req.UserComment,
	})
	if err := carts().Save(userID, lines); err != nil {
		httperr.Abort(c, httperr.Transport("Failed to save cart", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Item added to cart",
		"cartItems":  lines,
		"totalPrice": cart.Total(lines),
	})
}

// UpdateCartQuantity applies a quantity delta to one cart line. A line
// whose quantity reaches zero disappears from the cart.
func UpdateCartQuantity(c *gin.Context) {
	userID := middleware.GetUserID(c)
	foodID, err := strconv.ParseUint(c.Param("foodId"), 10, 64)
	if err != nil {
		httperr.Abort(c, httperr.Validation("Invalid food id"))
		return
	}

	var req UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.Validation(err.Error()))
		return
	}

	lines, err := carts().Load(userID)
	if err != nil {
		httperr.Abort(c, httperr.Transport("Failed to load cart", err))
		return
	}
	lines = cart.UpdateQuantity(lines, uint(foodID), req.Delta)
	if err := carts().Save(userID, lines); err != nil {
		httperr.Abort(c, httperr.Transport("Failed to save cart", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cartItems":  lines,
		"totalPrice": cart.Total(lines),
	})
}

// RemoveCartItem drops one line from the caller's cart
func RemoveCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	foodID, err := strconv.ParseUint(c.Param("foodId"), 10, 64)
	if err != nil {
		httperr.Abort(c, httperr.Validation("Invalid food id"))
		return
	}

	lines, err := carts().Load(userID)
	if err != nil {
		httperr.Abort(c, httperr.Transport("Failed to load cart", err))
		return
	}
	lines = cart.Remove(lines, uint(foodID))
	if err := carts().Save(userID, lines); err != nil {
		httperr.Abort(c, httperr.Transport("Failed to save cart", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cartItems":  lines,
		"totalPrice": cart.Total(lines),
	})
}

// ClearCart empties the caller's cart entirely
func ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if err := carts().Clear(userID); err != nil {
		httperr.Abort(c, httperr.Transport("Failed to clear cart", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
