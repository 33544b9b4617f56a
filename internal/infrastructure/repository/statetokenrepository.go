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

// StateTokenRepository implements account.StateTokenRepository using GORM
// with Model/Mapper separation.
type StateTokenRepository struct {
	db     *gorm.DB
	mapper mappers.StateTokenMapper
}

func NewStateTokenRepository(database *gorm.DB) account.StateTokenRepository {
	return &StateTokenRepository{
		db:     database,
		mapper: mappers.NewStateTokenMapper(),
	}
}

func (r *StateTokenRepository) Create(ctx context.Context, token *account.StateToken) error {
	model := r.mapper.ToModel(token)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create state token: %w", err)
	}

	token.ID = model.ID
	return nil
}

// Consume atomically marks the token used. The conditional update on
// used=false makes a replayed state value lose the race and fail, which is
// the anti-CSRF property the callback flow depends on.
func (r *StateTokenRepository) Consume(ctx context.Context, token string, provider account.Origin) (*account.StateToken, error) {
	now := time.Now().UTC()

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.OAuthStateTokenModel{}).
		Where("token = ? AND provider = ? AND used = ? AND expires_at > ?",
			token, string(provider), false, now).
		Update("used", true)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to consume state token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, account.ErrStateTokenInvalid
	}

	var model models.OAuthStateTokenModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("token = ?", token).
		First(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to load consumed state token: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *StateTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("used = ? OR expires_at < ?", true, now).
		Delete(&models.OAuthStateTokenModel{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired state tokens: %w", result.Error)
	}

	return result.RowsAffected, nil
}
