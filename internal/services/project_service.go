package services

import (
	"context"
	"strings"

	"chamba_backend/internal/models"
	"chamba_backend/internal/repositories"
	"chamba_backend/internal/services/dto"
	"chamba_backend/pkg/apperrors"
)

type ProjectService struct {
	projectRepo  repositories.ProjectRepository
	categoryRepo repositories.CategoryRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository, categoryRepo repositories.CategoryRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, categoryRepo: categoryRepo}
}

// Create stores a new project. When the request references one of the
// caller's pending category suggestions, the suggestion is linked to
// the project and its name recorded as the project's placeholder until
// an admin resolves it.
func (s *ProjectService) Create(ctx context.Context, employerID string, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	currency := models.Currency(req.BudgetCurrency)
	if currency == "" {
		currency = models.CurrencyCOP
	}

	project := &models.Project{
		EmployerID:     employerID,
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Budget:         req.Budget,
		BudgetCurrency: currency,
		Status:         models.ProjectStatusOpen,
		SkillsRequired: models.SkillsJSON(req.SkillsRequired),
	}

	var suggestion *models.Category
	if req.SuggestedCategoryID != "" {
		var err error
		suggestion, err = s.categoryRepo.FindByID(ctx, req.SuggestedCategoryID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if suggestion == nil || suggestion.Status != models.CategoryStatusPending ||
			suggestion.SuggestedBy == nil || *suggestion.SuggestedBy != employerID {
			return nil, apperrors.ErrSuggestionNotFound
		}
		project.SuggestedCategoryName = &suggestion.Name
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if suggestion != nil {
		if err := s.categoryRepo.LinkToProject(ctx, suggestion.ID, project.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDWithEmployer(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if project == nil {
		return nil, apperrors.ErrProjectNotFound
	}
	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

func (s *ProjectService) Update(ctx context.Context, userID, id string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.ownedProject(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	project.Title = req.Title
	project.Description = req.Description
	project.Category = req.Category
	project.Budget = req.Budget
	if req.BudgetCurrency != "" {
		project.BudgetCurrency = models.Currency(req.BudgetCurrency)
	}
	project.SkillsRequired = models.SkillsJSON(req.SkillsRequired)

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

// UpdateStatus moves an open project to a terminal status. Terminal
// statuses have no path back to open.
func (s *ProjectService) UpdateStatus(ctx context.Context, userID, id string, status models.ProjectStatus) (*dto.ProjectResponse, error) {
	project, err := s.ownedProject(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !models.IsTerminalProjectStatus(status) {
		return nil, apperrors.ErrInvalidStatus("project", "projects can only be closed, completed or cancelled")
	}

	project.Status = status
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

func (s *ProjectService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.ownedProject(ctx, userID, id); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProjectService) Search(ctx context.Context, req dto.ProjectSearchRequest) (*dto.ProjectListResponse, error) {
	criteria := repositories.ProjectSearchCriteria{
		Search:     strings.TrimSpace(req.Search),
		Category:   strings.TrimSpace(req.Category),
		BudgetMin:  req.BudgetMin,
		BudgetMax:  req.BudgetMax,
		Skills:     splitSkills(req.Skills),
		Status:     req.Status,
		EmployerID: req.UserID,
		Page:       req.Page,
		PageSize:   req.Limit,
	}
	criteria.Normalize()

	projects, total, err := s.projectRepo.Search(ctx, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages := int((total + int64(criteria.PageSize) - 1) / int64(criteria.PageSize))
	return &dto.ProjectListResponse{
		Projects:    dto.ToProjectResponses(projects),
		Count:       len(projects),
		TotalCount:  total,
		TotalPages:  totalPages,
		CurrentPage: criteria.Page,
	}, nil
}

func (s *ProjectService) ownedProject(ctx context.Context, userID, id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if project == nil {
		return nil, apperrors.ErrProjectNotFound
	}
	if project.EmployerID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return project, nil
}

func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var skills []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
