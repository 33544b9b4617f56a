package models

import (
	"time"

	"seedfund/internal/shared/constants"
)

// OTPCodeModel represents the database persistence model for one-time
// passcodes. Issued codes are never updated in place except for the used flag
// and the attempt counter.
type OTPCodeModel struct {
	ID        uint   `gorm:"primarykey"`
	AccountID uint   `gorm:"index:idx_otp_codes_account"`
	Email     string `gorm:"not null;size:255;index:idx_otp_codes_email_purpose"`
	Code      string `gorm:"not null;size:10"`
	Purpose   string `gorm:"not null;size:30;index:idx_otp_codes_email_purpose"`
	Used      bool   `gorm:"default:false"`
	Attempts  int    `gorm:"default:0"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index:idx_otp_codes_expires"`
}

// TableName specifies the table name for GORM
func (OTPCodeModel) TableName() string {
	return constants.TableOTPCodes
}
