package models

import "time"

type Message struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Message string `gorm:"type:text;not null"`

	CreatedAt time.Time
}
