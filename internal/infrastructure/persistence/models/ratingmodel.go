package models

import (
	"time"

	"seedfund/internal/shared/constants"
)

// RatingModel represents the database persistence model for project ratings.
// One row per (project, account); a re-rate updates the existing row.
type RatingModel struct {
	ID        uint `gorm:"primarykey"`
	ProjectID uint `gorm:"not null;uniqueIndex:idx_ratings_project_account"`
	AccountID uint `gorm:"not null;uniqueIndex:idx_ratings_project_account"`
	Score     int  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (RatingModel) TableName() string {
	return constants.TableRatings
}
