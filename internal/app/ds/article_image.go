package ds

// Привязка загруженной обложки к slug статьи CMS.
// Сам файл лежит в MinIO, здесь только имя объекта.
type ArticleImage struct {
	ID         uint   `gorm:"primaryKey"`
	Slug       string `gorm:"type:varchar(100);unique;not null"`
	ObjectName string `gorm:"type:varchar(255);not null"`
}
