package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"index;not null"`
	ParkID       uint      `gorm:"index;not null"`
	Date         time.Time `gorm:"not null"`
	NumTickets   int       `gorm:"not null;default:1"`
	HealthSafety bool      `gorm:"not null;default:false"`
	Reference    string    `gorm:"uniqueIndex"` // confirmation reference shown to the user

	User User `gorm:"foreignKey:UserID"`
	Park Park `gorm:"foreignKey:ParkID"`

	CreatedAt time.Time
}

// Mint the confirmation reference before creating
func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	b.Reference = uuid.New().String()
	return
}
