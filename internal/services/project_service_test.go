package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chamba_backend/internal/models"
	"chamba_backend/internal/services/dto"
)

type projectFixture struct {
	svc        *ProjectService
	projects   *fakeProjectRepo
	categories *fakeCategoryRepo
	employerID string
}

func newProjectFixture(t *testing.T) *projectFixture {
	t.Helper()
	projects := newFakeProjectRepo()
	categories := newFakeCategoryRepo()
	return &projectFixture{
		svc:        NewProjectService(projects, categories),
		projects:   projects,
		categories: categories,
		employerID: "11111111-1111-1111-1111-111111111111",
	}
}

func validCreateRequest() dto.CreateProjectRequest {
	return dto.CreateProjectRequest{
		Title:          "Remodelación de cocina",
		Description:    "Cocina integral de 12 metros cuadrados con enchape nuevo",
		Category:       "Albañilería",
		Budget:         2500000,
		SkillsRequired: []string{"Enchapado", "Remodelaciones"},
	}
}

func TestProjectServiceCreate(t *testing.T) {
	t.Run("round trip preserves the fields", func(t *testing.T) {
		f := newProjectFixture(t)

		created, err := f.svc.Create(context.Background(), f.employerID, validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, "open", created.Status)
		assert.Equal(t, "COP", created.BudgetCurrency)

		got, err := f.svc.Get(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Title, got.Title)
		assert.Equal(t, []string{"Enchapado", "Remodelaciones"}, got.SkillsRequired)
		assert.Equal(t, f.employerID, got.EmployerID)
	})

	t.Run("links the caller's pending suggestion", func(t *testing.T) {
		f := newProjectFixture(t)
		pending := f.categories.add(&models.Category{
			Name:        "Cerrajería",
			Slug:        "cerrajeria",
			Status:      models.CategoryStatusPending,
			SuggestedBy: &f.employerID,
		})

		req := validCreateRequest()
		req.SuggestedCategoryID = pending.ID
		created, err := f.svc.Create(context.Background(), f.employerID, req)
		require.NoError(t, err)

		require.NotNil(t, created.SuggestedCategoryName)
		assert.Equal(t, "Cerrajería", *created.SuggestedCategoryName)
		assert.Equal(t, created.ID, f.categories.linked[pending.ID])
	})

	t.Run("someone else's suggestion is 404", func(t *testing.T) {
		f := newProjectFixture(t)
		otherID := "22222222-2222-2222-2222-222222222222"
		pending := f.categories.add(&models.Category{
			Name:        "Cerrajería",
			Slug:        "cerrajeria",
			Status:      models.CategoryStatusPending,
			SuggestedBy: &otherID,
		})

		req := validCreateRequest()
		req.SuggestedCategoryID = pending.ID
		_, err := f.svc.Create(context.Background(), f.employerID, req)
		assertHTTPCode(t, err, http.StatusNotFound)
	})
}

func TestProjectServiceOwnership(t *testing.T) {
	f := newProjectFixture(t)
	project := f.projects.add(&models.Project{
		EmployerID: f.employerID,
		Title:      "Remodelación de cocina",
		Status:     models.ProjectStatusOpen,
	})
	stranger := "33333333-3333-3333-3333-333333333333"

	t.Run("update by a non-owner is 403", func(t *testing.T) {
		_, err := f.svc.Update(context.Background(), stranger, project.ID, dto.UpdateProjectRequest{
			Title:          "Otro título cualquiera",
			Description:    "Descripción suficientemente larga para validar",
			Category:       "Pintura",
			Budget:         100,
			SkillsRequired: []string{"Pintura interior"},
		})
		assertHTTPCode(t, err, http.StatusForbidden)
	})

	t.Run("delete by a non-owner is 403", func(t *testing.T) {
		err := f.svc.Delete(context.Background(), stranger, project.ID)
		assertHTTPCode(t, err, http.StatusForbidden)
	})

	t.Run("missing project is 404", func(t *testing.T) {
		err := f.svc.Delete(context.Background(), f.employerID, "missing")
		assertHTTPCode(t, err, http.StatusNotFound)
	})
}

func TestProjectServiceUpdateStatus(t *testing.T) {
	f := newProjectFixture(t)
	project := f.projects.add(&models.Project{
		EmployerID: f.employerID,
		Status:     models.ProjectStatusOpen,
	})

	t.Run("open cannot be set back", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(context.Background(), f.employerID, project.ID, models.ProjectStatusOpen)
		assertHTTPCode(t, err, http.StatusBadRequest)
	})

	t.Run("terminal statuses are accepted", func(t *testing.T) {
		resp, err := f.svc.UpdateStatus(context.Background(), f.employerID, project.ID, models.ProjectStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
	})
}

func TestProjectServiceSearch(t *testing.T) {
	t.Run("computes the page count", func(t *testing.T) {
		f := newProjectFixture(t)
		f.projects.searchTotal = 25
		f.projects.searchResult = []models.Project{{Title: "a"}, {Title: "b"}}

		resp, err := f.svc.Search(context.Background(), dto.ProjectSearchRequest{})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, int64(25), resp.TotalCount)
		assert.Equal(t, 3, resp.TotalPages)
		assert.Equal(t, 1, resp.CurrentPage)
	})

	t.Run("caps the requested limit", func(t *testing.T) {
		f := newProjectFixture(t)

		_, err := f.svc.Search(context.Background(), dto.ProjectSearchRequest{Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, 50, f.projects.lastCriteria.PageSize)
	})

	t.Run("splits the skills list", func(t *testing.T) {
		f := newProjectFixture(t)

		_, err := f.svc.Search(context.Background(), dto.ProjectSearchRequest{Skills: "React, Go , ,Node.js"})
		require.NoError(t, err)
		assert.Equal(t, []string{"React", "Go", "Node.js"}, f.projects.lastCriteria.Skills)
	})

	t.Run("userId scope reaches the repository", func(t *testing.T) {
		f := newProjectFixture(t)

		_, err := f.svc.Search(context.Background(), dto.ProjectSearchRequest{UserID: f.employerID, Status: "open"})
		require.NoError(t, err)
		assert.Equal(t, f.employerID, f.projects.lastCriteria.EmployerID)
		assert.Empty(t, f.projects.lastCriteria.Status)
	})
}
