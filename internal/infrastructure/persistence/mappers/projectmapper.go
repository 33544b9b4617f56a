package mappers

import (
	"seedfund/internal/domain/project"
	"seedfund/internal/infrastructure/persistence/models"
)

// ProjectMapper handles the conversion between domain entities and persistence models
type ProjectMapper interface {
	ToEntity(model *models.ProjectModel) *project.Project
	ToModel(entity *project.Project) *models.ProjectModel
	ToEntities(models []*models.ProjectModel) []*project.Project
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToEntity(model *models.ProjectModel) *project.Project {
	if model == nil {
		return nil
	}
	return &project.Project{
		ID:           model.ID,
		OwnerID:      model.OwnerID,
		Title:        model.Title,
		Summary:      model.Summary,
		Category:     model.Category,
		FundingGoal:  model.FundingGoal,
		FundingTotal: model.FundingTotal,
		Status:       project.Status(model.Status),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *ProjectMapperImpl) ToModel(entity *project.Project) *models.ProjectModel {
	if entity == nil {
		return nil
	}
	return &models.ProjectModel{
		ID:           entity.ID,
		OwnerID:      entity.OwnerID,
		Title:        entity.Title,
		Summary:      entity.Summary,
		Category:     entity.Category,
		FundingGoal:  entity.FundingGoal,
		FundingTotal: entity.FundingTotal,
		Status:       string(entity.Status),
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (m *ProjectMapperImpl) ToEntities(modelList []*models.ProjectModel) []*project.Project {
	entities := make([]*project.Project, 0, len(modelList))
	for _, model := range modelList {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
