package mappers

import (
	"seedfund/internal/domain/account"
	"seedfund/internal/infrastructure/persistence/models"
)

// StateTokenMapper handles the conversion between domain entities and persistence models
type StateTokenMapper interface {
	ToEntity(model *models.OAuthStateTokenModel) *account.StateToken
	ToModel(entity *account.StateToken) *models.OAuthStateTokenModel
}

type StateTokenMapperImpl struct{}

func NewStateTokenMapper() StateTokenMapper {
	return &StateTokenMapperImpl{}
}

func (m *StateTokenMapperImpl) ToEntity(model *models.OAuthStateTokenModel) *account.StateToken {
	if model == nil {
		return nil
	}
	return &account.StateToken{
		ID:          model.ID,
		Token:       model.Token,
		Provider:    account.Origin(model.Provider),
		RedirectURL: model.RedirectURL,
		Used:        model.Used,
		CreatedAt:   model.CreatedAt,
		ExpiresAt:   model.ExpiresAt,
	}
}

func (m *StateTokenMapperImpl) ToModel(entity *account.StateToken) *models.OAuthStateTokenModel {
	if entity == nil {
		return nil
	}
	return &models.OAuthStateTokenModel{
		ID:          entity.ID,
		Token:       entity.Token,
		Provider:    string(entity.Provider),
		RedirectURL: entity.RedirectURL,
		Used:        entity.Used,
		CreatedAt:   entity.CreatedAt,
		ExpiresAt:   entity.ExpiresAt,
	}
}
