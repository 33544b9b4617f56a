package models

import (
	"time"

	"seedfund/internal/shared/constants"
)

// OAuthStateTokenModel represents the database persistence model for
// single-use OAuth state tokens.
type OAuthStateTokenModel struct {
	ID          uint    `gorm:"primarykey"`
	Token       string  `gorm:"uniqueIndex;not null;size:128"`
	Provider    string  `gorm:"not null;size:20"`
	RedirectURL *string `gorm:"size:500"`
	Used        bool    `gorm:"default:false"`
	CreatedAt   time.Time
	ExpiresAt   time.Time `gorm:"index:idx_state_tokens_expires"`
}

// TableName specifies the table name for GORM
func (OAuthStateTokenModel) TableName() string {
	return constants.TableOAuthStateTokens
}
