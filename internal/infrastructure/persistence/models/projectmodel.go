package models

import (
	"time"

	"seedfund/internal/shared/constants"
)

// ProjectModel represents the database persistence model for project listings.
// FundingTotal is only ever changed inside the invest transaction while the
// row is locked.
type ProjectModel struct {
	ID           uint   `gorm:"primarykey"`
	OwnerID      uint   `gorm:"not null;index:idx_projects_owner"`
	Title        string `gorm:"not null;size:255"`
	Summary      string `gorm:"type:text"`
	Category     string `gorm:"size:50;index:idx_projects_category"`
	FundingGoal  int64  `gorm:"not null"`
	FundingTotal int64  `gorm:"not null;default:0"`
	Status       string `gorm:"not null;default:draft;size:20;index:idx_projects_status"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string {
	return constants.TableProjects
}
