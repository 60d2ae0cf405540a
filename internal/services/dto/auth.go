package dto

import (
	"time"

	"chamba_backend/internal/models"
)

// OAuthCallbackRequest carries the profile handed over by the OAuth
// provider after a successful sign-in.
type OAuthCallbackRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Image            string    `json:"image,omitempty"`
	Role             string    `json:"role"`
	SubscriptionTier string    `json:"subscription_tier"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		Image:            user.Image,
		Role:             string(user.Role),
		SubscriptionTier: string(user.SubscriptionTier),
		CreatedAt:        user.CreatedAt,
	}
}

func ToUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}
