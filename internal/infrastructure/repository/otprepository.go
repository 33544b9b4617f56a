package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"seedfund/internal/domain/account"
	"seedfund/internal/infrastructure/persistence/mappers"
	"seedfund/internal/infrastructure/persistence/models"
	"seedfund/internal/shared/db"
)

// OTPRepository implements account.OTPRepository using GORM with
// Model/Mapper separation.
type OTPRepository struct {
	db     *gorm.DB
	mapper mappers.OTPCodeMapper
}

func NewOTPRepository(database *gorm.DB) account.OTPRepository {
	return &OTPRepository{
		db:     database,
		mapper: mappers.NewOTPCodeMapper(),
	}
}

func (r *OTPRepository) Create(ctx context.Context, code *account.OTPCode) error {
	model := r.mapper.ToModel(code)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create otp code: %w", err)
	}

	code.ID = model.ID
	return nil
}

func (r *OTPRepository) GetLatestMatching(ctx context.Context, email, code string, purpose account.OTPPurpose) (*account.OTPCode, error) {
	var model models.OTPCodeModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("email = ? AND code = ? AND purpose = ? AND used = ? AND expires_at > ?",
			account.NormalizeEmail(email), code, string(purpose), false, time.Now().UTC()).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get otp code: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *OTPRepository) GetLatestOutstanding(ctx context.Context, email string, purpose account.OTPPurpose) (*account.OTPCode, error) {
	var model models.OTPCodeModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("email = ? AND purpose = ? AND used = ? AND expires_at > ?",
			account.NormalizeEmail(email), string(purpose), false, time.Now().UTC()).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get outstanding otp code: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// MarkUsed flips used=false to true and reports whether this call performed
// the flip. The conditional update is what gives verification its
// at-most-once guarantee under concurrent requests.
func (r *OTPRepository) MarkUsed(ctx context.Context, id uint) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.OTPCodeModel{}).
		Where("id = ? AND used = ?", id, false).
		Update("used", true)

	if result.Error != nil {
		return false, fmt.Errorf("failed to mark otp code used: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *OTPRepository) IncrementAttempts(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.OTPCodeModel{}).
		Where("id = ?", id).
		Update("attempts", gorm.Expr("attempts + 1")).Error; err != nil {
		return fmt.Errorf("failed to increment otp attempts: %w", err)
	}

	return nil
}

func (r *OTPRepository) CountCreatedSince(ctx context.Context, email string, purpose account.OTPPurpose, since time.Time) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.OTPCodeModel{}).
		Where("email = ? AND purpose = ? AND created_at > ?",
			account.NormalizeEmail(email), string(purpose), since).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count otp codes: %w", err)
	}

	return count, nil
}

func (r *OTPRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("expires_at < ?", cutoff).
		Delete(&models.OTPCodeModel{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired otp codes: %w", result.Error)
	}

	return result.RowsAffected, nil
}
