package models

import (
	"time"

	"gorm.io/datatypes"

	"seedfund/internal/shared/constants"
)

// AuthMethodModel represents the database persistence model for account
// credential channels. The unique index on (method, provider_user_id) keeps a
// federated identity bound to at most one account.
type AuthMethodModel struct {
	ID             uint    `gorm:"primarykey"`
	AccountID      uint    `gorm:"not null;index:idx_auth_methods_account"`
	Method         string  `gorm:"not null;size:20;uniqueIndex:idx_method_provider_user"`
	ProviderUserID *string `gorm:"size:255;uniqueIndex:idx_method_provider_user;column:provider_user_id"`
	ProviderEmail  *string `gorm:"size:255"`
	IsPrimary      bool    `gorm:"default:false"`
	IsActive       bool    `gorm:"default:true"`
	Metadata       datatypes.JSON
	LastUsedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (AuthMethodModel) TableName() string {
	return constants.TableAuthMethods
}
