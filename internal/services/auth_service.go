package services

import (
	"context"

	"chamba_backend/internal/auth"
	"chamba_backend/internal/logger"
	"chamba_backend/internal/models"
	"chamba_backend/internal/repositories"
	"chamba_backend/internal/services/dto"
	"chamba_backend/pkg/apperrors"
)

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// HandleOAuthCallback upserts the signed-in user and issues a session
// token. A failed upsert is logged and swallowed: sign-in proceeds with
// a token carrying only the profile, and handlers that need the user
// row respond 404 until a later sign-in lands the upsert.
func (s *AuthService) HandleOAuthCallback(ctx context.Context, req dto.OAuthCallbackRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.Upsert(ctx, req.Email, req.Name, req.Image)
	if err != nil || user == nil {
		if err == nil {
			err = apperrors.ErrUserNotFound
		}
		logger.CtxWithError(ctx, "user upsert failed during sign-in", err, "email", req.Email)
		user = &models.User{
			Email:            req.Email,
			Name:             req.Name,
			Image:            req.Image,
			Role:             models.UserRoleUser,
			SubscriptionTier: models.TierFree,
		}
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}

// GetCurrentUser resolves the session to its user row, falling back to
// the token email when the token carries no user id.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID, email string) (*dto.UserResponse, error) {
	var user *models.User
	var err error

	if userID != "" {
		user, err = s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	if user == nil && email != "" {
		user, err = s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}
