package repository

import (
	"time"

	"holdco-backend/internal/app/ds"

	"github.com/google/uuid"
)

// CreateContactSubmission сохраняет заявку с контактной формы
// и возвращает публичный идентификатор
func (r *Repository) CreateContactSubmission(name, email, subject, message string, phone *string) (*ds.ContactSubmission, error) {
	submission := ds.ContactSubmission{
		SubmissionID: uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		Subject:      subject,
		Message:      message,
		CreatedAt:    time.Now(),
	}
	if err := r.db.Create(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}
