package mappers

import (
	"encoding/json"
	"fmt"

	"seedfund/internal/domain/account"
	"seedfund/internal/infrastructure/persistence/models"
	"seedfund/internal/shared/authorization"
)

// AccountMapper handles the conversion between domain entities and persistence models
type AccountMapper interface {
	ToEntity(model *models.AccountModel) (*account.Account, error)
	ToModel(entity *account.Account) (*models.AccountModel, error)
	ToEntities(models []*models.AccountModel) ([]*account.Account, error)
}

type AccountMapperImpl struct{}

func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

func (m *AccountMapperImpl) ToEntity(model *models.AccountModel) (*account.Account, error) {
	if model == nil {
		return nil, nil
	}

	var profile account.Profile
	if len(model.Profile) > 0 {
		if err := json.Unmarshal(model.Profile, &profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
		}
	}

	entity, err := account.Reconstruct(account.ReconstructData{
		ID:              model.ID,
		Email:           model.Email,
		PasswordHash:    model.PasswordHash,
		Role:            authorization.ParseRole(model.Role),
		IsVerified:      model.IsVerified,
		VerifiedAt:      model.VerifiedAt,
		ApprovalStatus:  account.ApprovalStatus(model.ApprovalStatus),
		RejectionReason: model.RejectionReason,
		ProfileStep:     model.ProfileStep,
		IsActive:        model.IsActive,
		Origin:          account.Origin(model.Origin),
		Profile:         profile,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
		Version:         model.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct account entity: %w", err)
	}

	return entity, nil
}

func (m *AccountMapperImpl) ToModel(entity *account.Account) (*models.AccountModel, error) {
	if entity == nil {
		return nil, nil
	}

	profileJSON, err := json.Marshal(entity.Profile())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	return &models.AccountModel{
		ID:              entity.ID(),
		Email:           entity.Email(),
		PasswordHash:    entity.PasswordHash(),
		Role:            string(entity.Role()),
		IsVerified:      entity.IsVerified(),
		VerifiedAt:      entity.VerifiedAt(),
		ApprovalStatus:  string(entity.ApprovalStatus()),
		RejectionReason: entity.RejectionReason(),
		ProfileStep:     entity.ProfileStep(),
		IsActive:        entity.IsActive(),
		Origin:          string(entity.Origin()),
		Profile:         profileJSON,
		Version:         entity.Version(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

func (m *AccountMapperImpl) ToEntities(modelList []*models.AccountModel) ([]*account.Account, error) {
	entities := make([]*account.Account, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map account %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
