package models

import (
	"time"

	"seedfund/internal/shared/constants"
)

// InvestmentModel represents the database persistence model for investments.
type InvestmentModel struct {
	ID        uint  `gorm:"primarykey"`
	ProjectID uint  `gorm:"not null;index:idx_investments_project"`
	AccountID uint  `gorm:"not null;index:idx_investments_account"`
	Amount    int64 `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (InvestmentModel) TableName() string {
	return constants.TableInvestments
}
