package models

type Park struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	Location         string `gorm:"not null"`
	Description      string `gorm:"type:text;not null"`
	ShortDescription string `gorm:"not null"`
	Slug             string `gorm:"uniqueIndex;not null"`
	Difficulty       string `gorm:"type:varchar(20);not null"` // Easy, Moderate or Hard
	MinAge           int    `gorm:"not null"`
	Hours            string
	Price            string
	Folder           string // static asset folder for park images

	Bookings []Booking `gorm:"foreignKey:ParkID"`
}
