package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chamba_backend/internal/models"
)

// ApplicationRepository provides access to project applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	FindByID(ctx context.Context, id string) (*models.Application, error)
	FindByIDWithProject(ctx context.Context, id string) (*models.Application, error)
	ExistsForProject(ctx context.Context, projectID, freelancerID string) (bool, error)
	ListByFreelancer(ctx context.Context, freelancerID string) ([]models.Application, error)
	ListByProject(ctx context.Context, projectID string) ([]models.Application, error)
	Update(ctx context.Context, application *models.Application) error
	Delete(ctx context.Context, id string) error
}

type gormApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &gormApplicationRepository{db: db}
}

// Create inserts the application. The (project_id, freelancer_id)
// unique index is the source of truth for duplicates; a violation is
// reported as ErrApplicationExists.
func (r *gormApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	err := r.db.WithContext(ctx).Create(application).Error
	if isUniqueViolation(err) {
		return ErrApplicationExists
	}
	return err
}

func (r *gormApplicationRepository) FindByID(ctx context.Context, id string) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).First(&application, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *gormApplicationRepository) FindByIDWithProject(ctx context.Context, id string) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("Project").
		First(&application, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *gormApplicationRepository) ExistsForProject(ctx context.Context, projectID, freelancerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("project_id = ? AND freelancer_id = ?", projectID, freelancerID).
		Count(&count).Error
	return count > 0, err
}

func (r *gormApplicationRepository) ListByFreelancer(ctx context.Context, freelancerID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Project.Employer").
		Where("freelancer_id = ?", freelancerID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *gormApplicationRepository) ListByProject(ctx context.Context, projectID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Freelancer").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *gormApplicationRepository) Update(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}

func (r *gormApplicationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id).Error
}
