package dto

import (
	"time"

	"chamba_backend/internal/models"
)

type CreateProjectRequest struct {
	Title               string   `json:"title" validate:"required,min=5,max=255"`
	Description         string   `json:"description" validate:"required,min=20"`
	Category            string   `json:"category" validate:"required"`
	Budget              float64  `json:"budget" validate:"required,gt=0,lte=50000000000"`
	BudgetCurrency      string   `json:"budget_currency" validate:"omitempty,oneof=COP USD"`
	SkillsRequired      []string `json:"skills_required" validate:"required,min=1,max=10,dive,required"`
	SuggestedCategoryID string   `json:"suggested_category_id" validate:"omitempty,uuid"`
}

type UpdateProjectRequest struct {
	Title          string   `json:"title" validate:"required,min=5,max=255"`
	Description    string   `json:"description" validate:"required,min=20"`
	Category       string   `json:"category" validate:"required"`
	Budget         float64  `json:"budget" validate:"required,gt=0,lte=50000000000"`
	BudgetCurrency string   `json:"budget_currency" validate:"omitempty,oneof=COP USD"`
	SkillsRequired []string `json:"skills_required" validate:"required,min=1,max=10,dive,required"`
}

type UpdateProjectStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=closed completed cancelled"`
}

// ProjectSearchRequest is bound from the listing query string. Skills
// arrive as a comma-separated list and are split by the service.
type ProjectSearchRequest struct {
	Search    string   `form:"search"`
	Category  string   `form:"category"`
	BudgetMin *float64 `form:"budgetMin" validate:"omitempty,gte=0"`
	BudgetMax *float64 `form:"budgetMax" validate:"omitempty,gte=0"`
	Skills    string   `form:"skills"`
	Status    string   `form:"status" validate:"omitempty,oneof=open closed completed cancelled"`
	UserID    string   `form:"userId" validate:"omitempty,uuid"`
	Page      int      `form:"page"`
	Limit     int      `form:"limit"`
}

type ProjectEmployer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProjectResponse struct {
	ID                    string           `json:"id"`
	EmployerID            string           `json:"employer_id"`
	Title                 string           `json:"title"`
	Description           string           `json:"description"`
	Category              string           `json:"category"`
	Budget                float64          `json:"budget"`
	BudgetCurrency        string           `json:"budget_currency"`
	SkillsRequired        []string         `json:"skills_required"`
	Status                string           `json:"status"`
	SuggestedCategoryName *string          `json:"suggested_category_name,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
	Employer              *ProjectEmployer `json:"employer,omitempty"`
}

type ProjectListResponse struct {
	Projects    []ProjectResponse `json:"projects"`
	Count       int               `json:"count"`
	TotalCount  int64             `json:"total_count"`
	TotalPages  int               `json:"total_pages"`
	CurrentPage int               `json:"current_page"`
}

func ToProjectResponse(project *models.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:                    project.ID,
		EmployerID:            project.EmployerID,
		Title:                 project.Title,
		Description:           project.Description,
		Category:              project.Category,
		Budget:                project.Budget,
		BudgetCurrency:        string(project.BudgetCurrency),
		SkillsRequired:        models.SkillsFromJSON(project.SkillsRequired),
		Status:                string(project.Status),
		SuggestedCategoryName: project.SuggestedCategoryName,
		CreatedAt:             project.CreatedAt,
		UpdatedAt:             project.UpdatedAt,
	}
	if project.Employer != nil {
		resp.Employer = &ProjectEmployer{
			ID:    project.Employer.ID,
			Name:  project.Employer.Name,
			Email: project.Employer.Email,
		}
	}
	return resp
}

func ToProjectResponses(projects []models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, ToProjectResponse(&projects[i]))
	}
	return responses
}
