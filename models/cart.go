package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TasteType is the spice preference attached to a cart line
type TasteType string

const (
	TasteSpicy TasteType = "Spicy"
	TasteSalt  TasteType = "Salt"
	TasteMixed TasteType = "Mixed"
)

// ValidTaste reports whether t is one of the known taste types.
func ValidTaste(t TasteType) bool {
	switch t {
	case TasteSpicy, TasteSalt, TasteMixed:
		return true
	}
	return false
}

// CartLine is one entry of a user's cart: a food item reference plus
// quantity and the latest customization chosen for it.
type CartLine struct {
	FoodID         uint       `json:"id"`
	FoodName       string     `json:"foodName"`
	Image          string     `json:"image"`
	Quantity       int        `json:"quantity"`
	UnitPrice      float64    `json:"price"` // price snapshot at add time
	TasteType      TasteType  `json:"tasteType"`
	VegToppings    StringList `json:"vegToppings"`
	NonVegToppings StringList `json:"nonVegToppings"`
	UserComment    string     `json:"userComment"`
}

// CartLines stores the whole ordered cart as a JSON text column.
type CartLines []CartLine

func (ls CartLines) Value() (driver.Value, error) {
	if ls == nil {
		ls = CartLines{}
	}
	b, err := json.Marshal(ls)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (ls *CartLines) Scan(src interface{}) error {
	if src == nil {
		*ls = CartLines{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("CartLines: cannot scan %T", src)
	}
	if len(data) == 0 {
		*ls = CartLines{}
		return nil
	}
	return json.Unmarshal(data, ls)
}

// Cart is the persisted per-user cart row. One row per user, replaced
// wholesale on every mutation.
type Cart struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey"`
	Lines     CartLines `json:"lines" gorm:"type:text"`
	UpdatedAt time.Time `json:"updated_at"`
}
