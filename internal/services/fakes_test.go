package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"chamba_backend/internal/models"
	"chamba_backend/internal/repositories"
)

// In-memory repositories used by the service tests.

type fakeUserRepo struct {
	users     map[string]*models.User
	upsertErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Upsert(_ context.Context, email, name, image string) (*models.User, error) {
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			u.Name = name
			u.Image = image
			return u, nil
		}
	}
	return r.add(&models.User{
		Email:            strings.ToLower(email),
		Name:             name,
		Image:            image,
		Role:             models.UserRoleUser,
		SubscriptionTier: models.TierFree,
	}), nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

type assignedCategory struct {
	projectID string
	category  string
	skills    []string
}

type fakeProjectRepo struct {
	projects map[string]*models.Project

	searchResult []models.Project
	searchTotal  int64
	lastCriteria repositories.ProjectSearchCriteria

	assigned []assignedCategory
	deleted  []string
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]*models.Project{}}
}

func (r *fakeProjectRepo) add(project *models.Project) *models.Project {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	r.projects[project.ID] = project
	return project
}

func (r *fakeProjectRepo) Create(_ context.Context, project *models.Project) error {
	r.add(project)
	return nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id string) (*models.Project, error) {
	return r.projects[id], nil
}

func (r *fakeProjectRepo) FindByIDWithEmployer(_ context.Context, id string) (*models.Project, error) {
	return r.projects[id], nil
}

func (r *fakeProjectRepo) Update(_ context.Context, project *models.Project) error {
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id string) error {
	delete(r.projects, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeProjectRepo) Search(_ context.Context, criteria repositories.ProjectSearchCriteria) ([]models.Project, int64, error) {
	r.lastCriteria = criteria
	return r.searchResult, r.searchTotal, nil
}

func (r *fakeProjectRepo) AssignCategory(_ context.Context, projectID, category string, skills []string) error {
	r.assigned = append(r.assigned, assignedCategory{projectID, category, skills})
	if p, ok := r.projects[projectID]; ok {
		p.Category = category
		p.SuggestedCategoryName = nil
		p.SkillsRequired = models.SkillsJSON(skills)
	}
	return nil
}

func (r *fakeProjectRepo) FindLatestUncategorizedByEmployer(_ context.Context, employerID string) (*models.Project, error) {
	var latest *models.Project
	for _, p := range r.projects {
		if p.EmployerID != employerID || p.SuggestedCategoryName == nil {
			continue
		}
		if latest == nil || p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	return latest, nil
}

type fakeApplicationRepo struct {
	applications map[string]*models.Application
	createErr    error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[string]*models.Application{}}
}

func (r *fakeApplicationRepo) add(application *models.Application) *models.Application {
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	r.applications[application.ID] = application
	return application
}

func (r *fakeApplicationRepo) Create(_ context.Context, application *models.Application) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.add(application)
	return nil
}

func (r *fakeApplicationRepo) FindByID(_ context.Context, id string) (*models.Application, error) {
	return r.applications[id], nil
}

func (r *fakeApplicationRepo) FindByIDWithProject(_ context.Context, id string) (*models.Application, error) {
	return r.applications[id], nil
}

func (r *fakeApplicationRepo) ExistsForProject(_ context.Context, projectID, freelancerID string) (bool, error) {
	for _, a := range r.applications {
		if a.ProjectID == projectID && a.FreelancerID == freelancerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) ListByFreelancer(_ context.Context, freelancerID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.FreelancerID == freelancerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByProject(_ context.Context, projectID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.ProjectID == projectID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) Update(_ context.Context, application *models.Application) error {
	r.applications[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id string) error {
	delete(r.applications, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*models.Category
	skills     map[string][]string

	approveErr   error
	approveCalls int
	linked       map[string]string
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: map[string]*models.Category{},
		skills:     map[string][]string{},
		linked:     map[string]string{},
	}
}

func (r *fakeCategoryRepo) add(category *models.Category) *models.Category {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	r.categories[category.ID] = category
	return category
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	for _, c := range r.categories {
		if c.Slug == category.Slug {
			return repositories.ErrSlugTaken
		}
	}
	r.add(category)
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id string) (*models.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) FindByIDWithSuggester(_ context.Context, id string) (*models.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	for _, c := range r.categories {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) UpdateSuggestion(_ context.Context, id, name, slug string, skills []string) error {
	c, ok := r.categories[id]
	if !ok {
		return nil
	}
	c.Name = name
	c.Slug = slug
	c.SuggestedSkills = models.SkillsJSON(skills)
	return nil
}

func (r *fakeCategoryRepo) Approve(_ context.Context, id, name, slug string) error {
	r.approveCalls++
	if r.approveErr != nil {
		return r.approveErr
	}
	c, ok := r.categories[id]
	if !ok {
		return nil
	}
	c.Name = name
	c.Slug = slug
	c.Status = models.CategoryStatusApproved
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) DeletePendingOwned(_ context.Context, id, userID string) error {
	c, ok := r.categories[id]
	if !ok || c.Status != models.CategoryStatusPending || c.SuggestedBy == nil || *c.SuggestedBy != userID {
		return nil
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) ListApproved(_ context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.categories {
		if c.Status == models.CategoryStatusApproved {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) ListPendingByUser(_ context.Context, userID string) ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.categories {
		if c.Status == models.CategoryStatusPending && c.SuggestedBy != nil && *c.SuggestedBy == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) ListAll(_ context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) ListSkills(_ context.Context, categoryID string) ([]string, error) {
	return r.skills[categoryID], nil
}

func (r *fakeCategoryRepo) AddSkill(_ context.Context, categoryID, name string) error {
	for _, existing := range r.skills[categoryID] {
		if existing == name {
			return nil
		}
	}
	r.skills[categoryID] = append(r.skills[categoryID], name)
	return nil
}

func (r *fakeCategoryRepo) LinkToProject(_ context.Context, categoryID, projectID string) error {
	r.linked[categoryID] = projectID
	if c, ok := r.categories[categoryID]; ok {
		c.RelatedProjectID = &projectID
	}
	return nil
}
