package ds

import "time"

// Комментарий к статье. Создается неодобренным и не попадает
// в публичную выдачу до модерации.
type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	ArticleID string `gorm:"type:varchar(100);index;not null"` // slug статьи во внешнем CMS
	Name      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(100);not null"`
	Content   string `gorm:"type:text;not null"`
	Approved  bool   `gorm:"type:boolean;default:false;not null"`
	CreatedAt time.Time
}
