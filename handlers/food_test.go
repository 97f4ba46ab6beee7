package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"restaurant-order-api/models"
)

func TestCreateFoodItem_ManagerSucceeds(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, models.RoleManager)

	w := doJSON(t, r, http.MethodPost, "/api/foods", token, map[string]interface{}{
		"foodName":    "Burger",
		"description": "House special",
		"category":    "Lunch",
		"price":       500,
		"image":       "http://example.com/burger.png",
		"vegToppings": []string{"Onion", "Lettuce"},
	})
	wantStatus(t, w, http.StatusCreated)

	var created models.FoodItem
	decode(t, w, &created)
	if created.ID == 0 {
		t.Fatal("created item has no id")
	}
	if created.FoodName != "Burger" || created.Price != 500 || created.Category != models.CategoryLunch {
		t.Errorf("created = %+v", created)
	}

	// stored item round-trips through findById
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/foods/%d", created.ID), token, nil)
	wantStatus(t, w, http.StatusOK)
	var fetched models.FoodItem
	decode(t, w, &fetched)
	if fetched.FoodName != created.FoodName || fetched.Price != created.Price ||
		len(fetched.VegToppings) != 2 {
		t.Errorf("round trip mismatch: %+v vs %+v", fetched, created)
	}
}

func TestCreateFoodItem_EmployeeSucceeds(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, models.RoleEmployee)
	w := doJSON(t, r, http.MethodPost, "/api/foods", token, map[string]interface{}{
		"foodName": "Pancakes",
		"category": "Breakfast",
		"price":    350,
	})
	wantStatus(t, w, http.StatusCreated)
}

func TestCreateFoodItem_CustomerForbidden(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, models.RoleCustomer)
	// payload is perfectly valid — the role alone must reject it
	w := doJSON(t, r, http.MethodPost, "/api/foods", token, map[string]interface{}{
		"foodName": "Burger",
		"category": "Lunch",
		"price":    500,
	})
	wantStatus(t, w, http.StatusForbidden)
}

func TestCreateFoodItem_EmptyNameRejected(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, models.RoleManager)
	for _, name := range []string{"", "   ", "\t\n"} {
		w := doJSON(t, r, http.MethodPost, "/api/foods", token, map[string]interface{}{
			"foodName": name,
			"price":    100,
		})
		wantStatus(t, w, http.StatusBadRequest)
	}
}

func TestCreateFoodItem_LegacyToppingKeysNormalized(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, models.RoleManager)

	w := doJSON(t, r, http.MethodPost, "/api/foods", token, map[string]interface{}{
		"foodName":         "Kottu",
		"category":         "Dinner",
		"price":            800,
		"Veg Toppings":     []string{"Leeks"},
		"Non Veg Toppings": []string{"Chicken", "Egg"},
	})
	wantStatus(t, w, http.StatusCreated)

	var created models.FoodItem
	decode(t, w, &created)
	if len(created.VegToppings) != 1 || created.VegToppings[0] != "Leeks" {
		t.Errorf("VegToppings = %v, want [Leeks]", created.VegToppings)
	}
	if len(created.NonVegToppings) != 2 || created.NonVegToppings[0] != "Chicken" {
		t.Errorf("NonVegToppings = %v, want [Chicken Egg]", created.NonVegToppings)
	}
}

func TestCreateFoodItem_UnknownCategoryRejected(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, models.RoleManager)
	w := doJSON(t, r, http.MethodPost, "/api/foods", token, map[string]interface{}{
		"foodName": "Mystery",
		"category": "Brunch",
		"price":    100,
	})
	wantStatus(t, w, http.StatusBadRequest)
}

func TestGetFoodItems_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	r := setupRouter(t)
	staff := tokenFor(t, models.RoleManager)
	for _, name := range []string{"Burger", "Veggie Burger", "Pasta"} {
		w := doJSON(t, r, http.MethodPost, "/api/foods", staff, map[string]interface{}{
			"foodName": name,
			"category": "Lunch",
			"price":    500,
		})
		wantStatus(t, w, http.StatusCreated)
	}

	customer := tokenFor(t, models.RoleCustomer)
	w := doJSON(t, r, http.MethodGet, "/api/foods?search=burg", customer, nil)
	wantStatus(t, w, http.StatusOK)

	var resp struct {
		FoodItems []models.FoodItem `json:"foodItems"`
	}
	decode(t, w, &resp)
	if len(resp.FoodItems) != 2 {
		t.Errorf("search=burg matched %d items, want 2: %+v", len(resp.FoodItems), resp.FoodItems)
	}
}

func TestGetFoodItems_ZeroMatchesIsNotFound(t *testing.T) {
	r := setupRouter(t)
	staff := tokenFor(t, models.RoleManager)
	w := doJSON(t, r, http.MethodPost, "/api/foods", staff, map[string]interface{}{
		"foodName": "Burger",
		"category": "Lunch",
		"price":    500,
	})
	wantStatus(t, w, http.StatusCreated)

	w = doJSON(t, r, http.MethodGet, "/api/foods?search=pizza", staff, nil)
	wantStatus(t, w, http.StatusNotFound)
}

func TestFindFoodByID_MissingIsNotFound(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, models.RoleCustomer)
	w := doJSON(t, r, http.MethodGet, "/api/foods/9999", token, nil)
	wantStatus(t, w, http.StatusNotFound)
}

func TestUpdateFoodItem_FullOverwrite(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, models.RoleManager)

	w := doJSON(t, r, http.MethodPost, "/api/foods", token, map[string]interface{}{
		"foodName":    "Burger",
		"description": "old text",
		"category":    "Lunch",
		"price":       500,
		"vegToppings": []string{"Onion"},
	})
	wantStatus(t, w, http.StatusCreated)
	var created models.FoodItem
	decode(t, w, &created)

	// patch omits description and toppings: overwrite, not merge
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/foods/%d", created.ID), token, map[string]interface{}{
		"foodName": "Double Burger",
		"category": "Dinner",
		"price":    750,
	})
	wantStatus(t, w, http.StatusOK)

	var updated models.FoodItem
	decode(t, w, &updated)
	if updated.FoodName != "Double Burger" || updated.Price != 750 || updated.Category != models.CategoryDinner {
		t.Errorf("updated = %+v", updated)
	}
	if updated.Description != "" {
		t.Errorf("Description = %q, want cleared by full overwrite", updated.Description)
	}
	if len(updated.VegToppings) != 0 {
		t.Errorf("VegToppings = %v, want cleared by full overwrite", updated.VegToppings)
	}
}

func TestUpdateFoodItem_MissingIDIsNotFound(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, models.RoleEmployee)
	w := doJSON(t, r, http.MethodPatch, "/api/foods/424242", token, map[string]interface{}{
		"foodName": "Ghost",
		"price":    1,
	})
	wantStatus(t, w, http.StatusNotFound)
}

func TestDeleteFoodItem_Idempotent(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, models.RoleManager)

	w := doJSON(t, r, http.MethodPost, "/api/foods", token, map[string]interface{}{
		"foodName": "Burger",
		"price":    500,
	})
	wantStatus(t, w, http.StatusCreated)
	var created models.FoodItem
	decode(t, w, &created)

	path := fmt.Sprintf("/api/foods/%d", created.ID)
	w = doJSON(t, r, http.MethodDelete, path, token, nil)
	wantStatus(t, w, http.StatusOK)

	// deleting again still succeeds
	w = doJSON(t, r, http.MethodDelete, path, token, nil)
	wantStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodGet, path, token, nil)
	wantStatus(t, w, http.StatusNotFound)
}

func TestFoodItemIDMustBeNumeric(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, models.RoleManager)

	w := doJSON(t, r, http.MethodPost, "/api/foods", token, map[string]interface{}{
		"foodName": "Burger",
		"category": "Lunch",
		"price":    500,
	})
	wantStatus(t, w, http.StatusCreated)

	// a crafted id like "9999 OR 1=1" must be rejected outright, never
	// handed to the database as a condition
	crafted := "/api/foods/9999%20OR%201=1"

	w = doJSON(t, r, http.MethodGet, crafted, token, nil)
	wantStatus(t, w, http.StatusBadRequest)

	w = doJSON(t, r, http.MethodPatch, crafted, token, map[string]interface{}{
		"foodName": "Hijack",
		"price":    1,
	})
	wantStatus(t, w, http.StatusBadRequest)

	w = doJSON(t, r, http.MethodDelete, crafted, token, nil)
	wantStatus(t, w, http.StatusBadRequest)

	// the catalog must be untouched by the rejected delete
	w = doJSON(t, r, http.MethodGet, "/api/foods", token, nil)
	wantStatus(t, w, http.StatusOK)
	var resp struct {
		FoodItems []models.FoodItem `json:"foodItems"`
	}
	decode(t, w, &resp)
	if len(resp.FoodItems) != 1 || resp.FoodItems[0].FoodName != "Burger" {
		t.Errorf("catalog changed by rejected id: %+v", resp.FoodItems)
	}
}

func TestFoodEndpoints_RequireAuth(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/foods", "", nil)
	wantStatus(t, w, http.StatusUnauthorized)
}
