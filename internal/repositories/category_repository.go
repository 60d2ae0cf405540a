package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chamba_backend/internal/models"
)

// CategoryRepository provides access to the category taxonomy and its
// pending user suggestions.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id string) (*models.Category, error)
	FindByIDWithSuggester(ctx context.Context, id string) (*models.Category, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	UpdateSuggestion(ctx context.Context, id, name, slug string, skills []string) error
	Approve(ctx context.Context, id, name, slug string) error
	Delete(ctx context.Context, id string) error
	DeletePendingOwned(ctx context.Context, id, userID string) error
	ListApproved(ctx context.Context) ([]models.Category, error)
	ListPendingByUser(ctx context.Context, userID string) ([]models.Category, error)
	ListAll(ctx context.Context) ([]models.Category, error)
	ListSkills(ctx context.Context, categoryID string) ([]string, error)
	AddSkill(ctx context.Context, categoryID, name string) error
	LinkToProject(ctx context.Context, categoryID, projectID string) error
}

type gormCategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &gormCategoryRepository{db: db}
}

// Create inserts the category. Slug collisions are reported as
// ErrSlugTaken so callers can map them to a conflict.
func (r *gormCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	if isUniqueViolation(err) {
		return ErrSlugTaken
	}
	return err
}

func (r *gormCategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *gormCategoryRepository) FindByIDWithSuggester(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Preload("Suggester").
		First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *gormCategoryRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// UpdateSuggestion rewrites a pending suggestion's name, slug and
// proposed skills. Slug collisions are reported as ErrSlugTaken.
func (r *gormCategoryRepository) UpdateSuggestion(ctx context.Context, id, name, slug string, skills []string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":             name,
			"slug":             slug,
			"suggested_skills": models.SkillsJSON(skills),
		}).Error
	if isUniqueViolation(err) {
		return ErrSlugTaken
	}
	return err
}

// Approve promotes a pending suggestion to an approved category. When
// the slug is already taken the row is left pending and ErrSlugTaken
// is returned.
func (r *gormCategoryRepository) Approve(ctx context.Context, id, name, slug string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":   name,
			"slug":   slug,
			"status": models.CategoryStatusApproved,
		}).Error
	if isUniqueViolation(err) {
		return ErrSlugTaken
	}
	return err
}

func (r *gormCategoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error
}

// DeletePendingOwned removes a pending suggestion only if it belongs
// to userID. Idempotent: deleting a row that is gone or was already
// resolved is not an error.
func (r *gormCategoryRepository) DeletePendingOwned(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND suggested_by = ? AND status = ?", id, userID, models.CategoryStatusPending).
		Delete(&models.Category{}).Error
}

func (r *gormCategoryRepository) ListApproved(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Preload("Skills").
		Where("status = ?", models.CategoryStatusApproved).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *gormCategoryRepository) ListPendingByUser(ctx context.Context, userID string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("status = ? AND suggested_by = ?", models.CategoryStatusPending, userID).
		Order("created_at DESC").
		Find(&categories).Error
	return categories, err
}

// ListAll returns every category for the admin review screen, pending
// suggestions first, with the suggester and linked project attached.
func (r *gormCategoryRepository) ListAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Preload("Suggester").
		Preload("RelatedProject").
		Preload("Skills").
		Order("CASE WHEN status = 'pending' THEN 0 ELSE 1 END, created_at DESC").
		Find(&categories).Error
	return categories, err
}

func (r *gormCategoryRepository) ListSkills(ctx context.Context, categoryID string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.CategorySkill{}).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Pluck("name", &names).Error
	return names, err
}

// AddSkill inserts a skill into the category vocabulary, silently
// skipping names already present.
func (r *gormCategoryRepository) AddSkill(ctx context.Context, categoryID, name string) error {
	skill := models.CategorySkill{CategoryID: categoryID, Name: name}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&skill).Error
}

func (r *gormCategoryRepository) LinkToProject(ctx context.Context, categoryID, projectID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", categoryID).
		Update("related_project_id", projectID).Error
}
