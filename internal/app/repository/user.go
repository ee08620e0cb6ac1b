package repository

import (
	"time"

	"holdco-backend/internal/app/ds"

	"gorm.io/gorm"
)

// GetOrCreateUserByEmail возвращает пользователя портала, создавая
// запись при первом входе по magic-link
func (r *Repository) GetOrCreateUserByEmail(email string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	user = ds.User{Email: email, CreatedAt: time.Now()}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID возвращает пользователя по ID
func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// TouchLastLogin фиксирует время успешного входа
func (r *Repository) TouchLastLogin(id uint) error {
	now := time.Now()
	return r.db.Model(&ds.User{}).Where("id = ?", id).Update("last_login_at", &now).Error
}
