package models

import (
	"time"

	"gorm.io/gorm"
)

type Meal struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Image       string         `json:"image"`
	CategoryID  uint           `gorm:"index" json:"category_id"`
	Category    Category       `json:"category"`
	Extras      []Extra        `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"extras"`
	Available   bool           `gorm:"default:true" json:"available"`
	Featured    bool           `gorm:"default:false" json:"featured"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Extra is an optional add-on a customer can attach to a meal (e.g. extra cheese).
type Extra struct {
	ID     uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	MealID uint    `gorm:"index" json:"meal_id"`
	Name   string  `gorm:"not null" json:"name"`
	Price  float64 `json:"price"`
}
