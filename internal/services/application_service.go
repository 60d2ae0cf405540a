package services

import (
	"context"
	"errors"

	"chamba_backend/internal/models"
	"chamba_backend/internal/repositories"
	"chamba_backend/internal/services/dto"
	"chamba_backend/pkg/apperrors"
)

type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	projectRepo     repositories.ProjectRepository
	userRepo        repositories.UserRepository
	notifier        *Notifier
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	notifier *Notifier,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		projectRepo:     projectRepo,
		userRepo:        userRepo,
		notifier:        notifier,
	}
}

// Apply creates an application. Checks run in a fixed order: the
// project must exist, must be open, and the caller must not have
// applied before. The existence check for duplicates is a fast path;
// the unique index catches races and is still reported as a conflict.
func (s *ApplicationService) Apply(ctx context.Context, freelancerID string, req dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	project, err := s.projectRepo.FindByIDWithEmployer(ctx, req.ProjectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if project == nil {
		return nil, apperrors.ErrProjectNotFound
	}
	if project.Status != models.ProjectStatusOpen {
		return nil, apperrors.ErrProjectNotOpen
	}

	exists, err := s.applicationRepo.ExistsForProject(ctx, req.ProjectID, freelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrApplicationExists
	}

	application := &models.Application{
		ProjectID:    req.ProjectID,
		FreelancerID: freelancerID,
		Proposal:     req.Proposal,
		Bid:          req.Bid,
		Status:       models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, repositories.ErrApplicationExists) {
			return nil, apperrors.ErrApplicationExists
		}
		return nil, apperrors.InternalError(err)
	}

	if project.Employer != nil {
		freelancerName := "Un freelancer"
		if freelancer, ferr := s.userRepo.FindByID(ctx, freelancerID); ferr == nil && freelancer != nil {
			freelancerName = freelancer.Name
		}
		s.notifier.NewApplication(project.Employer.Email, project.Employer.Name, project.Title, freelancerName)
	}

	resp := dto.ToApplicationResponse(application)
	return &resp, nil
}

func (s *ApplicationService) ListMine(ctx context.Context, freelancerID string) ([]dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.ListByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToApplicationResponses(applications), nil
}

// ListForProject returns a project's applications to its owner.
func (s *ApplicationService) ListForProject(ctx context.Context, userID, projectID string) ([]dto.ApplicationResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if project == nil {
		return nil, apperrors.ErrProjectNotFound
	}
	if project.EmployerID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	applications, err := s.applicationRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToApplicationResponses(applications), nil
}

// Get returns an application to its applicant or the project owner.
func (s *ApplicationService) Get(ctx context.Context, userID, id string) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByIDWithProject(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if application == nil {
		return nil, apperrors.ErrApplicationNotFound
	}
	if application.FreelancerID != userID &&
		(application.Project == nil || application.Project.EmployerID != userID) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	resp := dto.ToApplicationResponse(application)
	return &resp, nil
}

func (s *ApplicationService) Update(ctx context.Context, userID, id string, req dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error) {
	application, err := s.ownedApplication(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	application.Proposal = req.Proposal
	application.Bid = req.Bid
	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToApplicationResponse(application)
	return &resp, nil
}

func (s *ApplicationService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.ownedApplication(ctx, userID, id); err != nil {
		return err
	}
	if err := s.applicationRepo.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationService) ownedApplication(ctx context.Context, userID, id string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if application == nil {
		return nil, apperrors.ErrApplicationNotFound
	}
	if application.FreelancerID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return application, nil
}
