package models

import (
	"time"

	"gorm.io/datatypes"
)

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem snapshots the meal at the moment it was added. Selected extras are
// stored as a JSON list; two lines never share a meal id, so adding the same
// meal again accumulates quantity on the existing line.
type CartItem struct {
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

// SelectedExtra is the serialized form of one chosen add-on inside
// CartItem.Extras / OrderItem.Extras.
type SelectedExtra struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// LineTotal is the amount this line contributes to the cart total.
func (i CartItem) LineTotal() float64 {
	return (i.MealPrice + i.ExtrasPrice) * float64(i.Quantity)
}

// CartTotal sums line totals. Always recomputed, never cached.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}
