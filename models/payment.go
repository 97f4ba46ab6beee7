package models

import "time"

// PaymentInfo holds the card fields as submitted. Stored verbatim, no
// validation — the gateway is an external collaborator.
type PaymentInfo struct {
	CardType       string `json:"cardType"`
	CardName       string `json:"cardName"`
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
	SecurityCode   string `json:"securityCode"`
}

// Payment is an immutable order record: a denormalized snapshot of the
// cart at submission time plus payment details and a pickup token.
// Later edits to FoodItem never reach historical records. Only IsChecked
// changes after creation, via the fulfillment endpoint.
type Payment struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	UserID      uint        `json:"user_id" gorm:"not null;index"`
	CartItems   CartLines   `json:"cartItems" gorm:"type:text"`
	TotalPrice  float64     `json:"totalPrice"`
	PaymentInfo PaymentInfo `json:"paymentInfo" gorm:"embedded"`
	TokenNumber int         `json:"tokenNumber" gorm:"not null;index"`
	IsChecked   bool        `json:"isChecked" gorm:"default:false"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
