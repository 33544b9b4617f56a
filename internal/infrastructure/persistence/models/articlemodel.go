package models

import (
	"time"

	"seedfund/internal/shared/constants"
)

// ArticleModel represents the database persistence model for markdown
// articles.
type ArticleModel struct {
	ID        uint   `gorm:"primarykey"`
	AuthorID  uint   `gorm:"not null;index:idx_articles_author"`
	Kind      string `gorm:"not null;size:20;index:idx_articles_kind"`
	Slug      string `gorm:"uniqueIndex;not null;size:255"`
	Title     string `gorm:"not null;size:255"`
	Body      string `gorm:"type:text"`
	Published bool   `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ArticleModel) TableName() string {
	return constants.TableArticles
}
