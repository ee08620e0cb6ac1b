package repository

import (
	"fmt"
	"time"

	"holdco-backend/internal/app/ds"
)

// CreateComment сохраняет комментарий, всегда неодобренный
func (r *Repository) CreateComment(articleID, name, email, content string) (*ds.Comment, error) {
	comment := ds.Comment{
		ArticleID: articleID,
		Name:      name,
		Email:     email,
		Content:   content,
		Approved:  false,
		CreatedAt: time.Now(),
	}
	if err := r.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetApprovedComments — публичная выдача: только одобренные
func (r *Repository) GetApprovedComments(articleID string) ([]ds.Comment, error) {
	var comments []ds.Comment
	err := r.db.
		Where("article_id = ? AND approved = ?", articleID, true).
		Order("created_at desc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// GetPendingComments — очередь модерации
func (r *Repository) GetPendingComments() ([]ds.Comment, error) {
	var comments []ds.Comment
	err := r.db.
		Where("approved = ?", false).
		Order("created_at asc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// ApproveComment одобряет комментарий
func (r *Repository) ApproveComment(id uint) error {
	result := r.db.Model(&ds.Comment{}).Where("id = ?", id).Update("approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("comment %d not found", id)
	}
	return nil
}

// DeleteComment удаляет комментарий
func (r *Repository) DeleteComment(id uint) error {
	result := r.db.Delete(&ds.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("comment %d not found", id)
	}
	return nil
}
