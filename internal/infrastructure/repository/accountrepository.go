package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"seedfund/internal/domain/account"
	"seedfund/internal/infrastructure/persistence/mappers"
	"seedfund/internal/infrastructure/persistence/models"
	"seedfund/internal/shared/db"
)

// AccountRepository implements account.Repository using GORM with
// Model/Mapper separation.
type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
}

func NewAccountRepository(database *gorm.DB) account.Repository {
	return &AccountRepository{
		db:     database,
		mapper: mappers.NewAccountMapper(),
	}
}

func (r *AccountRepository) Create(ctx context.Context, acct *account.Account) error {
	model, err := r.mapper.ToModel(acct)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	if err := acct.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set account ID: %w", err)
	}

	return nil
}

func (r *AccountRepository) Update(ctx context.Context, acct *account.Account) error {
	model, err := r.mapper.ToModel(acct)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AccountModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"email":            model.Email,
			"password_hash":    model.PasswordHash,
			"role":             model.Role,
			"is_verified":      model.IsVerified,
			"verified_at":      model.VerifiedAt,
			"approval_status":  model.ApprovalStatus,
			"rejection_reason": model.RejectionReason,
			"profile_step":     model.ProfileStep,
			"is_active":        model.IsActive,
			"profile":          model.Profile,
			"version":          model.Version,
			"updated_at":       model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}

	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	var model models.AccountModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	var model models.AccountModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("email = ?", account.NormalizeEmail(email)).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AccountModel{}).
		Where("email = ?", account.NormalizeEmail(email)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}

	return count > 0, nil
}

func (r *AccountRepository) ListByApprovalStatus(ctx context.Context, status account.ApprovalStatus, page, pageSize int) ([]*account.Account, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).
		Model(&models.AccountModel{}).
		Where("approval_status = ?", string(status))

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	var accountModels []*models.AccountModel
	if err := tx.
		Order("created_at ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&accountModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	entities, err := r.mapper.ToEntities(accountModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
