package dto

import (
	"time"

	"chamba_backend/internal/models"
)

type SuggestCategoryRequest struct {
	Name   string   `json:"name" validate:"required"`
	Skills []string `json:"skills" validate:"omitempty,max=20,dive,required"`
}

type EditCategorySuggestionRequest struct {
	ID     string   `json:"id" validate:"required,uuid"`
	Name   string   `json:"name" validate:"required"`
	Skills []string `json:"skills" validate:"omitempty,max=20,dive,required"`
}

// ResolveCategoryRequest is the admin decision payload. Action is
// either "approve" or "reassign"; rejection goes through DELETE.
type ResolveCategoryRequest struct {
	ID                 string   `json:"id" validate:"required,uuid"`
	Action             string   `json:"action" validate:"required"`
	NewName            string   `json:"new_name" validate:"omitempty"`
	ExistingCategoryID string   `json:"existing_category_id" validate:"omitempty,uuid"`
	ApprovedSkills     []string `json:"approved_skills" validate:"omitempty,max=20,dive,required"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Status    string    `json:"status"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryListResponse struct {
	Categories  []CategoryResponse `json:"categories"`
	Suggestions []CategoryResponse `json:"suggestions,omitempty"`
}

type SuggesterInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SuggestionProject struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	EmployerName string `json:"employer_name,omitempty"`
}

// AdminCategoryResponse is a category row as seen on the admin review
// screen, with suggester and project context for pending suggestions.
type AdminCategoryResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Slug            string             `json:"slug"`
	Status          string             `json:"status"`
	Skills          []string           `json:"skills"`
	SuggestedSkills []string           `json:"suggested_skills,omitempty"`
	Suggester       *SuggesterInfo     `json:"suggester,omitempty"`
	RelatedProject  *SuggestionProject `json:"related_project,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

func ToCategoryResponse(category *models.Category) CategoryResponse {
	skills := make([]string, 0, len(category.Skills))
	for _, s := range category.Skills {
		skills = append(skills, s.Name)
	}
	if category.Status == models.CategoryStatusPending {
		skills = models.SkillsFromJSON(category.SuggestedSkills)
	}
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Slug:      category.Slug,
		Status:    string(category.Status),
		Skills:    skills,
		CreatedAt: category.CreatedAt,
	}
}

func ToCategoryResponses(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, ToCategoryResponse(&categories[i]))
	}
	return responses
}
