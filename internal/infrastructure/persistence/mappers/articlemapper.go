package mappers

import (
	"seedfund/internal/domain/content"
	"seedfund/internal/infrastructure/persistence/models"
)

// ArticleMapper handles the conversion between domain entities and persistence models
type ArticleMapper interface {
	ToEntity(model *models.ArticleModel) *content.Article
	ToModel(entity *content.Article) *models.ArticleModel
	ToEntities(models []*models.ArticleModel) []*content.Article
}

type ArticleMapperImpl struct{}

func NewArticleMapper() ArticleMapper {
	return &ArticleMapperImpl{}
}

func (m *ArticleMapperImpl) ToEntity(model *models.ArticleModel) *content.Article {
	if model == nil {
		return nil
	}
	return &content.Article{
		ID:        model.ID,
		AuthorID:  model.AuthorID,
		Kind:      content.Kind(model.Kind),
		Slug:      model.Slug,
		Title:     model.Title,
		Body:      model.Body,
		Published: model.Published,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *ArticleMapperImpl) ToModel(entity *content.Article) *models.ArticleModel {
	if entity == nil {
		return nil
	}
	return &models.ArticleModel{
		ID:        entity.ID,
		AuthorID:  entity.AuthorID,
		Kind:      string(entity.Kind),
		Slug:      entity.Slug,
		Title:     entity.Title,
		Body:      entity.Body,
		Published: entity.Published,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (m *ArticleMapperImpl) ToEntities(modelList []*models.ArticleModel) []*content.Article {
	entities := make([]*content.Article, 0, len(modelList))
	for _, model := range modelList {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
