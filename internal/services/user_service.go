package services

import (
	"context"

	"chamba_backend/internal/repositories"
	"chamba_backend/internal/services/dto"
	"chamba_backend/pkg/apperrors"
)

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns every registered user for the admin panel.
func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToUserResponses(users), nil
}
