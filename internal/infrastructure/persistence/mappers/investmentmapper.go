package mappers

import (
	"seedfund/internal/domain/project"
	"seedfund/internal/infrastructure/persistence/models"
)

// InvestmentMapper converts investments, ratings and watchlist items between
// domain and persistence shapes. These are flat records; no separate mapper
// types per shape.
type InvestmentMapper struct{}

func NewInvestmentMapper() *InvestmentMapper {
	return &InvestmentMapper{}
}

func (m *InvestmentMapper) InvestmentToEntity(model *models.InvestmentModel) *project.Investment {
	if model == nil {
		return nil
	}
	return &project.Investment{
		ID:        model.ID,
		ProjectID: model.ProjectID,
		AccountID: model.AccountID,
		Amount:    model.Amount,
		CreatedAt: model.CreatedAt,
	}
}

func (m *InvestmentMapper) InvestmentToModel(entity *project.Investment) *models.InvestmentModel {
	if entity == nil {
		return nil
	}
	return &models.InvestmentModel{
		ID:        entity.ID,
		ProjectID: entity.ProjectID,
		AccountID: entity.AccountID,
		Amount:    entity.Amount,
		CreatedAt: entity.CreatedAt,
	}
}

func (m *InvestmentMapper) RatingToEntity(model *models.RatingModel) *project.Rating {
	if model == nil {
		return nil
	}
	return &project.Rating{
		ID:        model.ID,
		ProjectID: model.ProjectID,
		AccountID: model.AccountID,
		Score:     model.Score,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *InvestmentMapper) RatingToModel(entity *project.Rating) *models.RatingModel {
	if entity == nil {
		return nil
	}
	return &models.RatingModel{
		ID:        entity.ID,
		ProjectID: entity.ProjectID,
		AccountID: entity.AccountID,
		Score:     entity.Score,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (m *InvestmentMapper) WatchlistItemToEntity(model *models.WatchlistItemModel) *project.WatchlistItem {
	if model == nil {
		return nil
	}
	return &project.WatchlistItem{
		ID:        model.ID,
		ProjectID: model.ProjectID,
		AccountID: model.AccountID,
		CreatedAt: model.CreatedAt,
	}
}

func (m *InvestmentMapper) WatchlistItemToModel(entity *project.WatchlistItem) *models.WatchlistItemModel {
	if entity == nil {
		return nil
	}
	return &models.WatchlistItemModel{
		ID:        entity.ID,
		ProjectID: entity.ProjectID,
		AccountID: entity.AccountID,
		CreatedAt: entity.CreatedAt,
	}
}
