package models

import (
	"time"

	"gorm.io/datatypes"
)

// GuestCart belongs to an anonymous browser session. It keeps the cart alive
// before sign-in and is merged into the account cart at login.
type GuestCart struct {
	CartID    uint            `gorm:"primaryKey" json:"cart_id"`
	GuestID   string          `gorm:"uniqueIndex" json:"guest_id"` // Enforces ONE cart per guest
	Items     []GuestCartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type GuestCartItem struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CartID      uint           `gorm:"index" json:"cart_id"`
	MealID      uint           `json:"meal_id"`
	MealName    string         `json:"meal_name"`
	MealImage   string         `json:"meal_image"`
	MealPrice   float64        `json:"meal_price"`
	ExtrasPrice float64        `json:"extras_price"`
	Extras      datatypes.JSON `json:"extras"`
	Quantity    int            `json:"quantity"`
	AddedAt     time.Time      `json:"added_at"`
}

func (i GuestCartItem) LineTotal() float64 {
	return (i.MealPrice + i.ExtrasPrice) * float64(i.Quantity)
}

func GuestCartTotal(items []GuestCartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}
