package models

import "time"

// ReminderLog records every visit reminder attempt, successful or not.
type ReminderLog struct {
	ID        uint   `gorm:"primaryKey"`
	BookingID uint   `gorm:"index;not null"`
	UserID    uint   `gorm:"index;not null"`
	Phone     string `gorm:"not null"`
	Status    string `gorm:"type:varchar(20);not null"` // 'sent' or 'failed'
	Error     string
	SentAt    time.Time
}
