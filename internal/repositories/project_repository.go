package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chamba_backend/internal/models"
)

// ProjectRepository provides access to projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id string) (*models.Project, error)
	FindByIDWithEmployer(ctx context.Context, id string) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, criteria ProjectSearchCriteria) ([]models.Project, int64, error)
	AssignCategory(ctx context.Context, projectID, category string, skills []string) error
	FindLatestUncategorizedByEmployer(ctx context.Context, employerID string) (*models.Project, error)
}

type gormProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &gormProjectRepository{db: db}
}

func (r *gormProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *gormProjectRepository) FindByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *gormProjectRepository) FindByIDWithEmployer(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Employer").
		First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *gormProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes the project together with its applications.
func (r *gormProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

func (r *gormProjectRepository) Search(ctx context.Context, criteria ProjectSearchCriteria) ([]models.Project, int64, error) {
	criteria.Normalize()

	base := r.db.WithContext(ctx).Model(&models.Project{})
	for _, cond := range criteria.Conditions() {
		base = base.Where(cond.Expr, cond.Args...)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	err := base.Session(&gorm.Session{}).
		Preload("Employer").
		Order("projects.created_at DESC").
		Limit(criteria.PageSize).
		Offset(criteria.Offset()).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// AssignCategory finalizes a project's category after a suggestion is
// resolved: the category name is set, the pending suggestion text is
// cleared and the skill list is replaced.
func (r *gormProjectRepository) AssignCategory(ctx context.Context, projectID, category string, skills []string) error {
	return r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]interface{}{
			"category":                category,
			"suggested_category_name": nil,
			"skills_required":         models.SkillsJSON(skills),
		}).Error
}

// FindLatestUncategorizedByEmployer returns the employer's most recent
// project that still carries a pending category suggestion. Used only
// by the legacy-suggestion migration and the admin review view.
func (r *gormProjectRepository) FindLatestUncategorizedByEmployer(ctx context.Context, employerID string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Where("employer_id = ? AND suggested_category_name IS NOT NULL", employerID).
		Order("created_at DESC").
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}
