package models

import (
	"time"

	"wwa-backend/utils"

	"gorm.io/gorm"
)

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	LastName string `gorm:"not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Phone    string // optional, used for visit reminders

	RoleID *uint
	Role   *Role `gorm:"foreignKey:RoleID"`

	Bookings []Booking `gorm:"foreignKey:UserID"`

	CreatedAt time.Time
}

// Hash the password before storing
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// HasRole reports whether the user carries the named role. The Role
// association must be loaded.
func (u *User) HasRole(name string) bool {
	return u.Role != nil && u.Role.Name == name
}
