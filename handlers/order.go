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

type SubmitOrderRequest struct {
	CartItems   models.CartLines   `json:"cartItems" binding:"required"`
	PaymentInfo models.PaymentInfo `json:"paymentInfo"`
}

// SubmitOrder turns the submitted cart snapshot into an immutable payment
// record. The total is recomputed here from the snapshot — the client's
// figure is never trusted — and a pickup token is assigned from a
// monotonic counter inside the insert transaction.
func SubmitOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.Validation(err.Error()))
		return
	}
	if len(req.CartItems) == 0 {
		httperr.Abort(c, httperr.Validation("Cart is empty"))
		return
	}
	for _, line := range req.CartItems {
		if line.Quantity < 1 {
			httperr.Abort(c, httperr.Validation("Cart line quantity must be at least 1"))
			return
		}
		if line.TasteType != "" && !models.ValidTaste(line.TasteType) {
			httperr.Abort(c, httperr.Validation("Unknown taste type: "+string(line.TasteType)))
			return
		}
	}

	payment := models.Payment{
		UserID:      userID,
		CartItems:   req.CartItems,
		TotalPrice:  cart.Total(req.CartItems),
		PaymentInfo: req.PaymentInfo,
		IsChecked:   false,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var maxToken int
		if err := tx.Model(&models.Payment{}).
			Select("COALESCE(MAX(token_number), 0)").
			Scan(&maxToken).Error; err != nil {
			return err
		}
		payment.TokenNumber = maxToken + 1
		return tx.Create(&payment).Error
	})
	if err != nil {
		httperr.Abort(c, httperr.Transport("Failed to record order", err))
		return
	}

	// Checkout consumes the persisted cart
	if err := carts().Clear(userID); err != nil {
		httperr.Abort(c, httperr.Transport("Order recorded but cart could not be cleared", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"payment": payment,
	})
}

// GetMyOrders returns the caller's order history, newest first
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var payments []models.Payment
	if err := config.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		httperr.Abort(c, httperr.Transport("Failed to load orders", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(payments), "orders": payments})
}

// ListOrders returns every order for the fulfillment board, optionally
// filtered by the checked flag (staff only)
func ListOrders(c *gin.Context) {
	query := config.DB
	if checked := c.Query("checked"); checked == "true" || checked == "false" {
		query = query.Where("is_checked = ?", checked == "true")
	}

	var payments []models.Payment
	if err := query.Order("created_at desc").Find(&payments).Error; err != nil {
		httperr.Abort(c, httperr.Transport("Failed to load orders", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(payments), "orders": payments})
}

type SetCheckedRequest struct {
	IsChecked *bool `json:"isChecked" binding:"required"`
}

// SetOrderChecked flips the fulfillment flag. Every other field of a
// payment record stays frozen after creation.
func SetOrderChecked(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Abort(c, httperr.Validation("Invalid order id"))
		return
	}

	var req SetCheckedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.Validation(err.Error()))
		return
	}

	var payment models.Payment
	if err := config.DB.First(&payment, uint(orderID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Abort(c, httperr.NotFound("Order not found"))
			return
		}
		httperr.Abort(c, httperr.Transport("Failed to load order", err))
		return
	}

	if err := config.DB.Model(&payment).Update("is_checked", *req.IsChecked).Error; err != nil {
		httperr.Abort(c, httperr.Transport("Failed to update order", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Order updated",
		"order_id":  payment.ID,
		"isChecked": *req.IsChecked,
	})
}
