package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"seedfund/internal/domain/project"
	"seedfund/internal/infrastructure/persistence/mappers"
	"seedfund/internal/infrastructure/persistence/models"
	"seedfund/internal/shared/db"
)

// ProjectRepository implements project.Repository using GORM with
// Model/Mapper separation.
type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(database *gorm.DB) project.Repository {
	return &ProjectRepository{
		db:     database,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	p.ID = model.ID
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":         model.Title,
			"summary":       model.Summary,
			"category":      model.Category,
			"funding_goal":  model.FundingGoal,
			"funding_total": model.FundingTotal,
			"status":        model.Status,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}

	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// GetByIDForUpdate locks the row until the surrounding transaction commits.
// Only meaningful when called inside RunInTransaction.
func (r *ProjectRepository) GetByIDForUpdate(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel

	if err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project for update: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *ProjectRepository) List(ctx context.Context, category string, page, pageSize int) ([]*project.Project, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.ProjectModel{})
	if category != "" {
		tx = tx.Where("category = ?", category)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	var projectModels []*models.ProjectModel
	if err := tx.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&projectModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	return r.mapper.ToEntities(projectModels), total, nil
}
