package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-order-api/config"
	"restaurant-order-api/middleware"
	"restaurant-order-api/models"
)

// setupRouter gives each test a fresh in-memory database wired into the
// global config.DB plus a router with the real middleware stack.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Cart{},
		&models.Payment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db

	r := gin.New()

	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/foods", GetFoodItems)
		auth.GET("/foods/:foodId", FindFoodByID)
		auth.GET("/cart", GetCart)
		auth.POST("/cart/items", AddCartItem)
		auth.PATCH("/cart/items/:foodId", UpdateCartQuantity)
		auth.DELETE("/cart/items/:foodId", RemoveCartItem)
		auth.DELETE("/cart", ClearCart)
		auth.POST("/orders", SubmitOrder)
		auth.GET("/orders", GetMyOrders)
		auth.POST("/auth/logout", Logout)
		auth.GET("/profile", GetProfile)
	}

	staff := r.Group("/api")
	staff.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleManager, models.RoleEmployee))
	{
		staff.POST("/foods", CreateFoodItem)
		staff.PATCH("/foods/:foodId", UpdateFoodItem)
		staff.DELETE("/foods/:foodId", DeleteFoodItem)
		staff.GET("/staff/orders", ListOrders)
		staff.PATCH("/staff/orders/:id/checked", SetOrderChecked)
	}

	return r
}

// tokenFor creates a user with the given role and returns a valid JWT.
func tokenFor(t *testing.T, role models.UserRole) string {
	t.Helper()
	user := models.User{
		Name:         "Test " + string(role),
		Email:        strings.ToLower(string(role)) + "-" + strings.ReplaceAll(t.Name(), "/", "_") + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := middleware.GenerateToken(&user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// doJSON fires a JSON request with a Bearer token and returns the recorder.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
