package mappers

import (
	"encoding/json"
	"fmt"

	"seedfund/internal/domain/account"
	"seedfund/internal/infrastructure/persistence/models"
)

// AuthMethodMapper handles the conversion between domain entities and persistence models
type AuthMethodMapper interface {
	ToEntity(model *models.AuthMethodModel) (*account.AuthMethod, error)
	ToModel(entity *account.AuthMethod) (*models.AuthMethodModel, error)
	ToEntities(models []*models.AuthMethodModel) ([]*account.AuthMethod, error)
}

type AuthMethodMapperImpl struct{}

func NewAuthMethodMapper() AuthMethodMapper {
	return &AuthMethodMapperImpl{}
}

func (m *AuthMethodMapperImpl) ToEntity(model *models.AuthMethodModel) (*account.AuthMethod, error) {
	if model == nil {
		return nil, nil
	}

	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal auth method metadata: %w", err)
		}
	}

	return &account.AuthMethod{
		ID:            model.ID,
		AccountID:     model.AccountID,
		Method:        account.Method(model.Method),
		ProviderID:    model.ProviderUserID,
		ProviderEmail: model.ProviderEmail,
		IsPrimary:     model.IsPrimary,
		IsActive:      model.IsActive,
		Metadata:      metadata,
		LastUsedAt:    model.LastUsedAt,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}, nil
}

func (m *AuthMethodMapperImpl) ToModel(entity *account.AuthMethod) (*models.AuthMethodModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.AuthMethodModel{
		ID:             entity.ID,
		AccountID:      entity.AccountID,
		Method:         string(entity.Method),
		ProviderUserID: entity.ProviderID,
		ProviderEmail:  entity.ProviderEmail,
		IsPrimary:      entity.IsPrimary,
		IsActive:       entity.IsActive,
		LastUsedAt:     entity.LastUsedAt,
		CreatedAt:      entity.CreatedAt,
		UpdatedAt:      entity.UpdatedAt,
	}

	if entity.Metadata != nil {
		metadataJSON, err := json.Marshal(entity.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal auth method metadata: %w", err)
		}
		model.Metadata = metadataJSON
	}

	return model, nil
}

func (m *AuthMethodMapperImpl) ToEntities(modelList []*models.AuthMethodModel) ([]*account.AuthMethod, error) {
	entities := make([]*account.AuthMethod, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map auth method %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
