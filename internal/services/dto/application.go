package dto

import (
	"time"

	"chamba_backend/internal/models"
)

type CreateApplicationRequest struct {
	ProjectID string   `json:"project_id" validate:"required,uuid"`
	Proposal  string   `json:"proposal" validate:"required,min=50"`
	Bid       *float64 `json:"bid" validate:"omitempty,gt=0"`
}

type UpdateApplicationRequest struct {
	Proposal string   `json:"proposal" validate:"required,min=50"`
	Bid      *float64 `json:"bid" validate:"omitempty,gt=0"`
}

type ApplicationProject struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Budget         float64 `json:"budget"`
	BudgetCurrency string  `json:"budget_currency"`
	Status         string  `json:"status"`
}

type ApplicationFreelancer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

type ApplicationResponse struct {
	ID           string                 `json:"id"`
	ProjectID    string                 `json:"project_id"`
	FreelancerID string                 `json:"freelancer_id"`
	Proposal     string                 `json:"proposal"`
	Bid          *float64               `json:"bid,omitempty"`
	Status       string                 `json:"status"`
	CreatedAt    time.Time              `json:"created_at"`
	Project      *ApplicationProject    `json:"project,omitempty"`
	Freelancer   *ApplicationFreelancer `json:"freelancer,omitempty"`
}

func ToApplicationResponse(application *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:           application.ID,
		ProjectID:    application.ProjectID,
		FreelancerID: application.FreelancerID,
		Proposal:     application.Proposal,
		Bid:          application.Bid,
		Status:       string(application.Status),
		CreatedAt:    application.CreatedAt,
	}
	if application.Project != nil {
		resp.Project = &ApplicationProject{
			ID:             application.Project.ID,
			Title:          application.Project.Title,
			Budget:         application.Project.Budget,
			BudgetCurrency: string(application.Project.BudgetCurrency),
			Status:         string(application.Project.Status),
		}
	}
	if application.Freelancer != nil {
		resp.Freelancer = &ApplicationFreelancer{
			ID:    application.Freelancer.ID,
			Name:  application.Freelancer.Name,
			Email: application.Freelancer.Email,
			Image: application.Freelancer.Image,
		}
	}
	return resp
}

func ToApplicationResponses(applications []models.Application) []ApplicationResponse {
	responses := make([]ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, ToApplicationResponse(&applications[i]))
	}
	return responses
}
