package services

import (
	"context"
	"errors"

	"chamba_backend/internal/models"
	"chamba_backend/internal/repositories"
	"chamba_backend/internal/services/dto"
	"chamba_backend/internal/utils"
	"chamba_backend/pkg/apperrors"
)

const (
	actionApprove  = "approve"
	actionReassign = "reassign"

	maxCategoryNameLen = 255
)

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	projectRepo  repositories.ProjectRepository
	notifier     *Notifier
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	projectRepo repositories.ProjectRepository,
	notifier *Notifier,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		projectRepo:  projectRepo,
		notifier:     notifier,
	}
}

// List returns the approved taxonomy and, for signed-in callers, their
// own pending suggestions.
func (s *CategoryService) List(ctx context.Context, userID string) (*dto.CategoryListResponse, error) {
	approved, err := s.categoryRepo.ListApproved(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.CategoryListResponse{Categories: dto.ToCategoryResponses(approved)}

	if userID != "" {
		pending, err := s.categoryRepo.ListPendingByUser(ctx, userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.Suggestions = dto.ToCategoryResponses(pending)
	}
	return resp, nil
}

// Propose creates a pending category suggestion owned by the caller.
func (s *CategoryService) Propose(ctx context.Context, userID string, req dto.SuggestCategoryRequest) (*dto.CategoryResponse, error) {
	name, slug, err := normalizeAndSlug(req.Name)
	if err != nil {
		return nil, err
	}

	taken, err := s.categoryRepo.SlugExists(ctx, slug, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrCategorySlugTaken
	}

	category := &models.Category{
		Name:            name,
		Slug:            slug,
		Status:          models.CategoryStatusPending,
		SuggestedBy:     &userID,
		SuggestedSkills: models.SkillsJSON(req.Skills),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrSlugTaken) {
			return nil, apperrors.ErrCategorySlugTaken
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// Edit renames one of the caller's pending suggestions.
func (s *CategoryService) Edit(ctx context.Context, userID string, req dto.EditCategorySuggestionRequest) (*dto.CategoryResponse, error) {
	category, err := s.ownedPending(ctx, userID, req.ID)
	if err != nil {
		return nil, err
	}

	name, slug, err := normalizeAndSlug(req.Name)
	if err != nil {
		return nil, err
	}

	taken, err := s.categoryRepo.SlugExists(ctx, slug, category.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrCategorySlugTaken
	}

	skills := req.Skills
	if skills == nil {
		skills = models.SkillsFromJSON(category.SuggestedSkills)
	}
	if err := s.categoryRepo.UpdateSuggestion(ctx, category.ID, name, slug, skills); err != nil {
		if errors.Is(err, repositories.ErrSlugTaken) {
			return nil, apperrors.ErrCategorySlugTaken
		}
		return nil, apperrors.InternalError(err)
	}

	category.Name = name
	category.Slug = slug
	category.SuggestedSkills = models.SkillsJSON(skills)
	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// Cancel deletes the caller's own pending suggestion. Cancelling a row
// that is already gone or resolved is a no-op.
func (s *CategoryService) Cancel(ctx context.Context, userID, id string) error {
	if err := s.categoryRepo.DeletePendingOwned(ctx, id, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// AdminList returns every category with review context. Pending rows
// created before project linking existed get their suggester's most
// recent unresolved project attached for display only.
func (s *CategoryService) AdminList(ctx context.Context) ([]dto.AdminCategoryResponse, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.AdminCategoryResponse, 0, len(categories))
	for i := range categories {
		category := &categories[i]

		skills := make([]string, 0, len(category.Skills))
		for _, skill := range category.Skills {
			skills = append(skills, skill.Name)
		}

		resp := dto.AdminCategoryResponse{
			ID:        category.ID,
			Name:      category.Name,
			Slug:      category.Slug,
			Status:    string(category.Status),
			Skills:    skills,
			CreatedAt: category.CreatedAt,
		}
		if category.Status == models.CategoryStatusPending {
			resp.SuggestedSkills = models.SkillsFromJSON(category.SuggestedSkills)
		}
		if category.Suggester != nil {
			resp.Suggester = &dto.SuggesterInfo{
				ID:    category.Suggester.ID,
				Name:  category.Suggester.Name,
				Email: category.Suggester.Email,
			}
		}

		project := category.RelatedProject
		if project == nil && category.Status == models.CategoryStatusPending && category.SuggestedBy != nil {
			// Legacy suggestions predate project linking; attach the
			// suggester's latest unresolved project without writing.
			project, err = s.projectRepo.FindLatestUncategorizedByEmployer(ctx, *category.SuggestedBy)
			if err != nil {
				return nil, apperrors.InternalError(err)
			}
		}
		if project != nil {
			sp := &dto.SuggestionProject{ID: project.ID, Title: project.Title}
			if category.Suggester != nil {
				sp.EmployerName = category.Suggester.Name
			}
			resp.RelatedProject = sp
		}

		responses = append(responses, resp)
	}
	return responses, nil
}

// Resolve applies an admin decision to a pending suggestion.
func (s *CategoryService) Resolve(ctx context.Context, req dto.ResolveCategoryRequest) (*dto.CategoryResponse, error) {
	switch req.Action {
	case actionApprove:
		return s.approve(ctx, req)
	case actionReassign:
		return s.reassign(ctx, req)
	default:
		return nil, apperrors.ErrInvalidOperation("category", "action must be approve or reassign")
	}
}

// approve promotes the pending suggestion, optionally under a new
// name. A slug collision leaves the row pending and reports the name
// that was attempted.
func (s *CategoryService) approve(ctx context.Context, req dto.ResolveCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.pendingByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	finalName := category.Name
	finalSlug := category.Slug
	if req.NewName != "" {
		finalName, finalSlug, err = normalizeAndSlug(req.NewName)
		if err != nil {
			return nil, err
		}
	}

	taken, err := s.categoryRepo.SlugExists(ctx, finalSlug, category.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrCategorySlugTakenFor(finalName)
	}

	if err := s.categoryRepo.Approve(ctx, category.ID, finalName, finalSlug); err != nil {
		if errors.Is(err, repositories.ErrSlugTaken) {
			return nil, apperrors.ErrCategorySlugTakenFor(finalName)
		}
		return nil, apperrors.InternalError(err)
	}

	for _, skill := range req.ApprovedSkills {
		if err := s.categoryRepo.AddSkill(ctx, category.ID, skill); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if category.RelatedProjectID != nil {
		if err := s.projectRepo.AssignCategory(ctx, *category.RelatedProjectID, finalName, req.ApprovedSkills); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if category.Suggester != nil {
		s.notifier.CategoryApproved(category.Suggester.Email, category.Suggester.Name, finalName)
	}

	category.Name = finalName
	category.Slug = finalSlug
	category.Status = models.CategoryStatusApproved
	resp := dto.ToCategoryResponse(category)
	resp.Skills = req.ApprovedSkills
	return &resp, nil
}

// reassign folds the suggestion into an existing category: the linked
// project moves to that category with the merged skill list, the
// approved skills join the category vocabulary and the pending row is
// deleted.
func (s *CategoryService) reassign(ctx context.Context, req dto.ResolveCategoryRequest) (*dto.CategoryResponse, error) {
	if req.ExistingCategoryID == "" {
		return nil, apperrors.ErrInvalidOperation("category", "existing_category_id is required for reassign")
	}

	category, err := s.pendingByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.FindByID(ctx, req.ExistingCategoryID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if existing == nil || existing.Status != models.CategoryStatusApproved {
		return nil, apperrors.ErrCategoryNotFound
	}

	existingSkills, err := s.categoryRepo.ListSkills(ctx, existing.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	merged := mergeSkills(existingSkills, req.ApprovedSkills)

	if category.RelatedProjectID != nil {
		if err := s.projectRepo.AssignCategory(ctx, *category.RelatedProjectID, existing.Name, merged); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	for _, skill := range req.ApprovedSkills {
		if err := s.categoryRepo.AddSkill(ctx, existing.ID, skill); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if err := s.categoryRepo.Delete(ctx, category.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if category.Suggester != nil {
		s.notifier.CategoryReassigned(category.Suggester.Email, category.Suggester.Name, category.Name, existing.Name)
	}

	resp := dto.CategoryResponse{
		ID:        existing.ID,
		Name:      existing.Name,
		Slug:      existing.Slug,
		Status:    string(existing.Status),
		Skills:    merged,
		CreatedAt: existing.CreatedAt,
	}
	return &resp, nil
}

// Reject deletes a pending suggestion and notifies its suggester.
func (s *CategoryService) Reject(ctx context.Context, id string) error {
	category, err := s.pendingByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, category.ID); err != nil {
		return apperrors.InternalError(err)
	}
	if category.Suggester != nil {
		s.notifier.CategoryRejected(category.Suggester.Email, category.Suggester.Name, category.Name)
	}
	return nil
}

func (s *CategoryService) ownedPending(ctx context.Context, userID, id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if category == nil || category.Status != models.CategoryStatusPending ||
		category.SuggestedBy == nil || *category.SuggestedBy != userID {
		return nil, apperrors.ErrSuggestionNotFound
	}
	return category, nil
}

func (s *CategoryService) pendingByID(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByIDWithSuggester(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if category == nil || category.Status != models.CategoryStatusPending {
		return nil, apperrors.ErrSuggestionNotFound
	}
	return category, nil
}

// normalizeAndSlug cleans a user-submitted category name and derives
// its slug. Names shorter than 2 or longer than 255 characters after
// normalization are rejected.
func normalizeAndSlug(raw string) (string, string, error) {
	name := utils.NormalizeCategoryName(raw)
	if length := len([]rune(name)); length < 2 || length > maxCategoryNameLen {
		return "", "", apperrors.ErrInvalidCategoryName
	}
	return name, utils.Slugify(name), nil
}

// mergeSkills appends the additions not already present, matching
// exactly. Case-insensitive duplicates are kept; display layers dedup
// case-insensitively on their own.
func mergeSkills(existing, additions []string) []string {
	merged := make([]string, 0, len(existing)+len(additions))
	seen := make(map[string]bool, len(existing))
	for _, skill := range existing {
		merged = append(merged, skill)
		seen[skill] = true
	}
	for _, skill := range additions {
		if !seen[skill] {
			merged = append(merged, skill)
			seen[skill] = true
		}
	}
	return merged
}
