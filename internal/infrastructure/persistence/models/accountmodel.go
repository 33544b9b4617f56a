package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"seedfund/internal/shared/constants"
)

// AccountModel represents the database persistence model for accounts.
// This is the anti-corruption layer between domain and database.
type AccountModel struct {
	ID              uint    `gorm:"primarykey"`
	Email           string  `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash    *string `gorm:"size:255"`
	Role            string  `gorm:"not null;default:unassigned;size:20"`
	IsVerified      bool    `gorm:"default:false;index:idx_accounts_verified"`
	VerifiedAt      *time.Time
	ApprovalStatus  string  `gorm:"not null;default:pending;size:20;index:idx_accounts_approval"`
	RejectionReason *string `gorm:"size:500"`
	ProfileStep     string  `gorm:"not null;default:verification;size:30"`
	IsActive        bool    `gorm:"default:true"`
	Origin          string  `gorm:"not null;default:password;size:20"`
	Profile         datatypes.JSON
	Version         int `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return constants.TableAccounts
}

// BeforeCreate hook for GORM
func (a *AccountModel) BeforeCreate(tx *gorm.DB) error {
	if a.ApprovalStatus == "" {
		a.ApprovalStatus = "pending"
	}
	if a.Version == 0 {
		a.Version = 1
	}
	return nil
}
