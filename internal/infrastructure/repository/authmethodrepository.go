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

// AuthMethodRepository implements account.AuthMethodRepository using GORM
// with Model/Mapper separation.
type AuthMethodRepository struct {
	db     *gorm.DB
	mapper mappers.AuthMethodMapper
}

func NewAuthMethodRepository(database *gorm.DB) account.AuthMethodRepository {
	return &AuthMethodRepository{
		db:     database,
		mapper: mappers.NewAuthMethodMapper(),
	}
}

func (r *AuthMethodRepository) Create(ctx context.Context, method *account.AuthMethod) error {
	model, err := r.mapper.ToModel(method)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create auth method: %w", err)
	}

	method.ID = model.ID
	return nil
}

func (r *AuthMethodRepository) Update(ctx context.Context, method *account.AuthMethod) error {
	model, err := r.mapper.ToModel(method)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AuthMethodModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"provider_email": model.ProviderEmail,
			"is_primary":     model.IsPrimary,
			"is_active":      model.IsActive,
			"metadata":       model.Metadata,
			"last_used_at":   model.LastUsedAt,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update auth method: %w", result.Error)
	}

	return nil
}

func (r *AuthMethodRepository) ListActiveByAccount(ctx context.Context, accountID uint) ([]*account.AuthMethod, error) {
	var methodModels []*models.AuthMethodModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("account_id = ? AND is_active = ?", accountID, true).
		Order("created_at ASC").
		Find(&methodModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list auth methods: %w", err)
	}

	return r.mapper.ToEntities(methodModels)
}

func (r *AuthMethodRepository) GetByAccountAndMethod(ctx context.Context, accountID uint, method account.Method, providerID *string) (*account.AuthMethod, error) {
	tx := db.GetTxFromContext(ctx, r.db).
		Where("account_id = ? AND method = ?", accountID, string(method))
	if providerID != nil {
		tx = tx.Where("provider_user_id = ?", *providerID)
	}

	var model models.AuthMethodModel
	if err := tx.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get auth method: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AuthMethodRepository) GetByProviderIdentity(ctx context.Context, method account.Method, providerID string) (*account.AuthMethod, error) {
	var model models.AuthMethodModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("method = ? AND provider_user_id = ?", string(method), providerID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get auth method by provider identity: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// SetPrimary clears the primary flag on every method of the account and sets
// it on the targeted row, in one transaction.
func (r *AuthMethodRepository) SetPrimary(ctx context.Context, accountID uint, method account.Method, providerID *string) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&models.AuthMethodModel{}).
			Where("account_id = ?", accountID).
			Update("is_primary", false).Error; err != nil {
			return fmt.Errorf("failed to clear primary flags: %w", err)
		}

		target := tx.
			Model(&models.AuthMethodModel{}).
			Where("account_id = ? AND method = ? AND is_active = ?", accountID, string(method), true)
		if providerID != nil {
			target = target.Where("provider_user_id = ?", *providerID)
		}

		result := target.Update("is_primary", true)
		if result.Error != nil {
			return fmt.Errorf("failed to set primary flag: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return account.ErrPrimaryMethodTargetMissing
		}

		return nil
	})
}

func (r *AuthMethodRepository) Deactivate(ctx context.Context, accountID uint, method account.Method, providerID *string) error {
	tx := db.GetTxFromContext(ctx, r.db).
		Model(&models.AuthMethodModel{}).
		Where("account_id = ? AND method = ?", accountID, string(method))
	if providerID != nil {
		tx = tx.Where("provider_user_id = ?", *providerID)
	}

	result := tx.Updates(map[string]interface{}{
		"is_active":  false,
		"is_primary": false,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate auth method: %w", result.Error)
	}

	return nil
}
