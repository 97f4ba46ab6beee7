package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"restaurant-order-api/config"
	"restaurant-order-api/httperr"
	"restaurant-order-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FoodItemRequest is the create/update body. Toppings are accepted under
// both the current keys and the legacy spaced spellings; NormalizedVeg /
// NormalizedNonVeg pick one canonical value so both spellings never reach
// storage.
type FoodItemRequest struct {
	FoodName          string              `json:"foodName"`
	Description       string              `json:"description"`
	Category          models.FoodCategory `json:"category"`
	Price             float64             `json:"price" binding:"gte=0"`
	Image             string              `json:"image"`
	VegToppings       []string            `json:"vegToppings"`
	NonVegToppings    []string            `json:"nonVegToppings"`
	VegToppingsAlt    []string            `json:"Veg Toppings"`
	NonVegToppingsAlt []string            `json:"Non Veg Toppings"`
}

// NormalizedVeg returns the veg toppings list regardless of which key the
// client used. The legacy spelling wins when both are present, matching
// the order the keys were historically consulted in.
func (r *FoodItemRequest) NormalizedVeg() models.StringList {
	if len(r.VegToppingsAlt) > 0 {
		return models.StringList(r.VegToppingsAlt)
	}
	if r.VegToppings == nil {
		return models.StringList{}
	}
	return models.StringList(r.VegToppings)
}

func (r *FoodItemRequest) NormalizedNonVeg() models.StringList {
	if len(r.NonVegToppingsAlt) > 0 {
		return models.StringList(r.NonVegToppingsAlt)
	}
	if r.NonVegToppings == nil {
		return models.StringList{}
	}
	return models.StringList(r.NonVegToppings)
}

// foodIDParam parses the :foodId path segment. Only a plain numeric id
// ever reaches a query; anything else is rejected before gorm could read
// it as an inline condition.
func foodIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("foodId"), 10, 64)
	if err != nil {
		return 0, httperr.Validation("Invalid food id")
	}
	return uint(id), nil
}

// FindFoodByID returns a single catalog item
func FindFoodByID(c *gin.Context) {
	foodID, err := foodIDParam(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var item models.FoodItem
	if err := config.DB.First(&item, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Abort(c, httperr.NotFound("Food item not found"))
			return
		}
		httperr.Abort(c, httperr.Transport("Failed to load food item", err))
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateFoodItem adds a catalog item (Manager/Employee only, enforced by
// the route's role gate)
func CreateFoodItem(c *gin.Context) {
	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.Validation(err.Error()))
		return
	}
	if strings.TrimSpace(req.FoodName) == "" {
		httperr.Abort(c, httperr.Validation("Food name is required"))
		return
	}
	if req.Category != "" && !models.ValidCategory(req.Category) {
		httperr.Abort(c, httperr.Validation("Unknown category: "+string(req.Category)))
		return
	}

	item := models.FoodItem{
		FoodName:       req.FoodName,
		Description:    req.Description,
		Category:       req.Category,
		Price:          req.Price,
		Image:          req.Image,
		VegToppings:    req.NormalizedVeg(),
		NonVegToppings: req.NormalizedNonVeg(),
	}
	if err := config.DB.Create(&item).Error; err != nil {
		httperr.Abort(c, httperr.Transport("Failed to create food item", err))
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetFoodItems returns all catalog items, or those whose name contains
// the search term (case-insensitive). Zero matches is reported as 404 —
// the client error branch depends on that — while a storage failure stays
// a distinct 500.
func GetFoodItems(c *gin.Context) {
	query := config.DB
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(food_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var items []models.FoodItem
	if err := query.Find(&items).Error; err != nil {
		httperr.Abort(c, httperr.Transport("Failed to load food items", err))
		return
	}
	if len(items) == 0 {
		httperr.Abort(c, httperr.NotFound("No food items found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"foodItems": items})
}

// UpdateFoodItem overwrites every editable field of an item. Unlike the
// old behavior of silently returning nothing, a missing id is a 404.
func UpdateFoodItem(c *gin.Context) {
	foodID, err := foodIDParam(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var item models.FoodItem
	if err := config.DB.First(&item, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Abort(c, httperr.NotFound("Food item not found"))
			return
		}
		httperr.Abort(c, httperr.Transport("Failed to load food item", err))
		return
	}

	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.Validation(err.Error()))
		return
	}
	if strings.TrimSpace(req.FoodName) == "" {
		httperr.Abort(c, httperr.Validation("Food name is required"))
		return
	}
	if req.Category != "" && !models.ValidCategory(req.Category) {
		httperr.Abort(c, httperr.Validation("Unknown category: "+string(req.Category)))
		return
	}

	// Full overwrite, not a partial merge
	item.FoodName = req.FoodName
	item.Description = req.Description
	item.Category = req.Category
	item.Price = req.Price
	item.Image = req.Image
	item.VegToppings = req.NormalizedVeg()
	item.NonVegToppings = req.NormalizedNonVeg()

	if err := config.DB.Save(&item).Error; err != nil {
		httperr.Abort(c, httperr.Transport("Failed to update food item", err))
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteFoodItem removes an item. Deleting an id that is already gone
// still succeeds.
func DeleteFoodItem(c *gin.Context) {
	foodID, err := foodIDParam(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := config.DB.Delete(&models.FoodItem{}, foodID).Error; err != nil {
		httperr.Abort(c, httperr.Transport("Failed to delete food item", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted successfully"})
}
