package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chamba_backend/internal/models"
)

// UserRepository provides access to user accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Upsert(ctx context.Context, email, name, image string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "LOWER(email) = LOWER(?)", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert creates the user on first sign-in and refreshes the profile
// fields on every subsequent one. Email is the conflict key.
func (r *gormUserRepository) Upsert(ctx context.Context, email, name, image string) (*models.User, error) {
	user := models.User{
		Email:            strings.ToLower(strings.TrimSpace(email)),
		Name:             name,
		Image:            image,
		Role:             models.UserRoleUser,
		SubscriptionTier: models.TierFree,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "image", "updated_at"}),
		}).
		Create(&user).Error
	if err != nil {
		return nil, err
	}
	// OnConflict DoUpdates does not reload role or tier, so fetch the
	// row back to return the persisted state.
	return r.FindByEmail(ctx, user.Email)
}

func (r *gormUserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}
