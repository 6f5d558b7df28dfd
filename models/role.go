package models

type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"` // 'admin' or 'customer'

	Users []User `gorm:"foreignKey:RoleID"`
}
