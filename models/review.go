package models

import (
	"time"

	"gorm.io/datatypes"
)

// Review is written once by a customer whose completed order contained the
// meal. It is never edited or deleted by the storefront.
type Review struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	MealID    uint           `gorm:"index;not null" json:"meal_id"`
	UserID    string         `gorm:"not null" json:"user_id"`
	UserName  string         `json:"user_name"`
	Rating    int            `gorm:"not null" json:"rating"` // 1-5
	Comment   string         `json:"comment"`
	Images    datatypes.JSON `json:"images"` // up to 3 image URLs
	CreatedAt time.Time      `json:"created_at"`
}
