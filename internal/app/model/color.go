package model

import (
	"time"

	"gorm.io/gorm"
)

type Color struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Code      string         `json:"code"` // hex code, e.g. #ffd700
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Color) TableName() string {
	return "colors"
}
