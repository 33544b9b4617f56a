package mappers

import (
	"seedfund/internal/domain/account"
	"seedfund/internal/infrastructure/persistence/models"
)

// OTPCodeMapper handles the conversion between domain entities and persistence models
type OTPCodeMapper interface {
	ToEntity(model *models.OTPCodeModel) *account.OTPCode
	ToModel(entity *account.OTPCode) *models.OTPCodeModel
}

type OTPCodeMapperImpl struct{}

func NewOTPCodeMapper() OTPCodeMapper {
	return &OTPCodeMapperImpl{}
}

func (m *OTPCodeMapperImpl) ToEntity(model *models.OTPCodeModel) *account.OTPCode {
	if model == nil {
		return nil
	}
	return &account.OTPCode{
		ID:        model.ID,
		AccountID: model.AccountID,
		Email:     model.Email,
		Code:      model.Code,
		Purpose:   account.OTPPurpose(model.Purpose),
		Used:      model.Used,
		Attempts:  model.Attempts,
		CreatedAt: model.CreatedAt,
		ExpiresAt: model.ExpiresAt,
	}
}

func (m *OTPCodeMapperImpl) ToModel(entity *account.OTPCode) *models.OTPCodeModel {
	if entity == nil {
		return nil
	}
	return &models.OTPCodeModel{
		ID:        entity.ID,
		AccountID: entity.AccountID,
		Email:     entity.Email,
		Code:      entity.Code,
		Purpose:   string(entity.Purpose),
		Used:      entity.Used,
		Attempts:  entity.Attempts,
		CreatedAt: entity.CreatedAt,
		ExpiresAt: entity.ExpiresAt,
	}
}
