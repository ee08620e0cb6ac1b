package repository

import (
	"holdco-backend/internal/app/ds"

	"gorm.io/gorm"
)

// UpsertArticleImage привязывает объект MinIO к slug статьи,
// возвращает имя замененного объекта (пустое, если привязки не было)
func (r *Repository) UpsertArticleImage(slug, objectName string) (string, error) {
	var existing ds.ArticleImage
	err := r.db.Where("slug = ?", slug).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return "", r.db.Create(&ds.ArticleImage{Slug: slug, ObjectName: objectName}).Error
	}
	if err != nil {
		return "", err
	}

	previous := existing.ObjectName
	existing.ObjectName = objectName
	if err := r.db.Save(&existing).Error; err != nil {
		return "", err
	}
	return previous, nil
}

// GetArticleImage возвращает имя объекта обложки для slug,
// пустую строку если обложка не загружалась
func (r *Repository) GetArticleImage(slug string) (string, error) {
	var image ds.ArticleImage
	err := r.db.Where("slug = ?", slug).First(&image).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return image.ObjectName, nil
}
