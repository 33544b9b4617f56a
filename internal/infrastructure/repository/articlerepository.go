package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"seedfund/internal/domain/content"
	"seedfund/internal/infrastructure/persistence/mappers"
	"seedfund/internal/infrastructure/persistence/models"
	"seedfund/internal/shared/db"
)

// ArticleRepository implements content.Repository using GORM with
// Model/Mapper separation.
type ArticleRepository struct {
	db     *gorm.DB
	mapper mappers.ArticleMapper
}

func NewArticleRepository(database *gorm.DB) content.Repository {
	return &ArticleRepository{
		db:     database,
		mapper: mappers.NewArticleMapper(),
	}
}

func (r *ArticleRepository) Create(ctx context.Context, a *content.Article) error {
	model := r.mapper.ToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	a.ID = model.ID
	return nil
}

func (r *ArticleRepository) Update(ctx context.Context, a *content.Article) error {
	model := r.mapper.ToModel(a)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ArticleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":      model.Title,
			"body":       model.Body,
			"published":  model.Published,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update article: %w", result.Error)
	}

	return nil
}

func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*content.Article, error) {
	var model models.ArticleModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("slug = ?", slug).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *ArticleRepository) List(ctx context.Context, kind content.Kind, publishedOnly bool, page, pageSize int) ([]*content.Article, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.ArticleModel{})
	if kind != "" {
		tx = tx.Where("kind = ?", string(kind))
	}
	if publishedOnly {
		tx = tx.Where("published = ?", true)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	var articleModels []*models.ArticleModel
	if err := tx.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&articleModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	return r.mapper.ToEntities(articleModels), total, nil
}
