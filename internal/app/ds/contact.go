package ds

import "time"

// Заявка с контактной формы
type ContactSubmission struct {
	ID           uint   `gorm:"primaryKey"`
	SubmissionID string `gorm:"type:varchar(40);unique;not null"` // публичный идентификатор (uuid)
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(100);not null"`
	Phone        *string `gorm:"type:varchar(30)"` // Nullable
	Subject      string `gorm:"type:varchar(200);not null"`
	Message      string `gorm:"type:text;not null"`
	CreatedAt    time.Time
}
