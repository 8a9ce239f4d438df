package models

import (
	"time"

	"gorm.io/gorm"
)

type Banner struct {
	ID        uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	ImageURL  string         `json:"image_url" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
