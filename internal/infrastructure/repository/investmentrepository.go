package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"seedfund/internal/domain/project"
	"seedfund/internal/infrastructure/persistence/mappers"
	"seedfund/internal/infrastructure/persistence/models"
	"seedfund/internal/shared/db"
)

// InvestmentRepository implements project.InvestmentRepository using GORM.
// It covers investments, ratings and watchlist items.
type InvestmentRepository struct {
	db     *gorm.DB
	mapper *mappers.InvestmentMapper
}

func NewInvestmentRepository(database *gorm.DB) project.InvestmentRepository {
	return &InvestmentRepository{
		db:     database,
		mapper: mappers.NewInvestmentMapper(),
	}
}

func (r *InvestmentRepository) CreateInvestment(ctx context.Context, inv *project.Investment) error {
	model := r.mapper.InvestmentToModel(inv)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}

	inv.ID = model.ID
	return nil
}

func (r *InvestmentRepository) ListInvestmentsByAccount(ctx context.Context, accountID uint, page, pageSize int) ([]*project.Investment, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).
		Model(&models.InvestmentModel{}).
		Where("account_id = ?", accountID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count investments: %w", err)
	}

	var investmentModels []*models.InvestmentModel
	if err := tx.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&investmentModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list investments: %w", err)
	}

	investments := make([]*project.Investment, 0, len(investmentModels))
	for _, model := range investmentModels {
		investments = append(investments, r.mapper.InvestmentToEntity(model))
	}

	return investments, total, nil
}

func (r *InvestmentRepository) GetRating(ctx context.Context, projectID, accountID uint) (*project.Rating, error) {
	var model models.RatingModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("project_id = ? AND account_id = ?", projectID, accountID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return r.mapper.RatingToEntity(&model), nil
}

func (r *InvestmentRepository) SaveRating(ctx context.Context, rating *project.Rating) error {
	model := r.mapper.RatingToModel(rating)

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}

	rating.ID = model.ID
	return nil
}

func (r *InvestmentRepository) AverageRating(ctx context.Context, projectID uint) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.RatingModel{}).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
		Where("project_id = ?", projectID).
		Scan(&result).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to compute average rating: %w", err)
	}

	return result.Avg, result.Count, nil
}

func (r *InvestmentRepository) GetWatchlistItem(ctx context.Context, projectID, accountID uint) (*project.WatchlistItem, error) {
	var model models.WatchlistItemModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("project_id = ? AND account_id = ?", projectID, accountID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get watchlist item: %w", err)
	}

	return r.mapper.WatchlistItemToEntity(&model), nil
}

func (r *InvestmentRepository) AddWatchlistItem(ctx context.Context, item *project.WatchlistItem) error {
	model := r.mapper.WatchlistItemToModel(item)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to add watchlist item: %w", err)
	}

	item.ID = model.ID
	return nil
}

func (r *InvestmentRepository) RemoveWatchlistItem(ctx context.Context, projectID, accountID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("project_id = ? AND account_id = ?", projectID, accountID).
		Delete(&models.WatchlistItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to remove watchlist item: %w", err)
	}

	return nil
}

func (r *InvestmentRepository) ListWatchlist(ctx context.Context, accountID uint, page, pageSize int) ([]*project.WatchlistItem, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).
		Model(&models.WatchlistItemModel{}).
		Where("account_id = ?", accountID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count watchlist items: %w", err)
	}

	var itemModels []*models.WatchlistItemModel
	if err := tx.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&itemModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list watchlist items: %w", err)
	}

	items := make([]*project.WatchlistItem, 0, len(itemModels))
	for _, model := range itemModels {
		items = append(items, r.mapper.WatchlistItemToEntity(model))
	}

	return items, total, nil
}
