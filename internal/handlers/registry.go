package handlers

import (
	"chamba_backend/internal/currency"
	"chamba_backend/internal/services"
)

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	Project     *ProjectHandler
	Application *ApplicationHandler
	Category    *CategoryHandler
	Admin       *AdminHandler
	Misc        *MiscHandler
}

func NewAppHandlers(svc *services.ServiceContainer, rates *currency.Cache) *AppHandlers {
	base := NewBaseHandler()
	return &AppHandlers{
		Auth:        NewAuthHandler(base, svc.Auth),
		Project:     NewProjectHandler(base, svc.Project, svc.Application),
		Application: NewApplicationHandler(base, svc.Application),
		Category:    NewCategoryHandler(base, svc.Category),
		Admin:       NewAdminHandler(base, svc.Category, svc.User),
		Misc:        NewMiscHandler(rates),
	}
}
