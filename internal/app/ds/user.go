package ds

import "time"

// Пользователь портала самообслуживания. Пароля нет: вход только
// по magic-link, запись создается при первом успешном входе.
type User struct {
	ID          uint   `gorm:"primaryKey"`
	Email       string `gorm:"type:varchar(100);unique;not null"`
	FullName    string `gorm:"type:varchar(100)"`
	Role        int    `gorm:"type:int;default:0;not null"` // customer, manager, admin
	CreatedAt   time.Time
	LastLoginAt *time.Time `gorm:"default:null"`
}
