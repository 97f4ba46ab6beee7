package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// FoodCategory is the fixed set of menu sections
type FoodCategory string

const (
	CategoryBreakfast FoodCategory = "Breakfast"
	CategoryLunch     FoodCategory = "Lunch"
	CategoryDinner    FoodCategory = "Dinner"
	CategoryShorties  FoodCategory = "Shorties"
	CategoryDrinks    FoodCategory = "Drinks"
	CategoryDesserts  FoodCategory = "Desserts"
)

// ValidCategory reports whether c is one of the known menu sections.
func ValidCategory(c FoodCategory) bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner,
		CategoryShorties, CategoryDrinks, CategoryDesserts:
		return true
	}
	return false
}

// StringList stores an ordered list of strings as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("StringList: cannot scan %T", src)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

type FoodItem struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	FoodName       string       `json:"foodName" gorm:"not null;index"`
	Description    string       `json:"description"`
	Category       FoodCategory `json:"category"`
	Price          float64      `json:"price"`
	Image          string       `json:"image"`
	VegToppings    StringList   `json:"vegToppings" gorm:"type:text"`
	NonVegToppings StringList   `json:"nonVegToppings" gorm:"type:text"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
