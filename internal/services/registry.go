package services

import (
	"gorm.io/gorm"

	"chamba_backend/internal/email"
	"chamba_backend/internal/repositories"
)

// ServiceContainer wires every service with its repositories. Built
// once at startup and handed to the handlers.
type ServiceContainer struct {
	Auth        *AuthService
	User        *UserService
	Project     *ProjectService
	Application *ApplicationService
	Category    *CategoryService
}

func NewServiceContainer(db *gorm.DB, mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	notifier := NewNotifier(mailer)

	return &ServiceContainer{
		Auth:        NewAuthService(userRepo),
		User:        NewUserService(userRepo),
		Project:     NewProjectService(projectRepo, categoryRepo),
		Application: NewApplicationService(applicationRepo, projectRepo, userRepo, notifier),
		Category:    NewCategoryService(categoryRepo, projectRepo, notifier),
	}
}
