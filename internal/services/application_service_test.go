package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chamba_backend/internal/email"
	"chamba_backend/internal/models"
	"chamba_backend/internal/repositories"
	"chamba_backend/internal/services/dto"
	"chamba_backend/pkg/apperrors"
)

type applicationFixture struct {
	svc       *ApplicationService
	users     *fakeUserRepo
	projects  *fakeProjectRepo
	apps      *fakeApplicationRepo
	mailer    *email.MockProvider
	employer  *models.User
	applicant *models.User
	project   *models.Project
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()

	users := newFakeUserRepo()
	projects := newFakeProjectRepo()
	apps := newFakeApplicationRepo()
	mailer := email.NewMockProvider()

	employer := users.add(&models.User{Email: "boss@chamba.co", Name: "Boss"})
	applicant := users.add(&models.User{Email: "dev@chamba.co", Name: "Dev"})
	project := projects.add(&models.Project{
		EmployerID:  employer.ID,
		Title:       "Instalación eléctrica completa",
		Status:      models.ProjectStatusOpen,
		Employer:    employer,
		Description: "Cableado de una casa de dos pisos con tablero nuevo",
	})

	return &applicationFixture{
		svc:       NewApplicationService(apps, projects, users, NewNotifier(mailer)),
		users:     users,
		projects:  projects,
		apps:      apps,
		mailer:    mailer,
		employer:  employer,
		applicant: applicant,
		project:   project,
	}
}

func validProposal() string {
	return "Tengo diez años de experiencia en instalaciones residenciales y puedo empezar esta semana."
}

func TestApplicationServiceApply(t *testing.T) {
	t.Run("creates a pending application", func(t *testing.T) {
		f := newApplicationFixture(t)

		resp, err := f.svc.Apply(context.Background(), f.applicant.ID, dto.CreateApplicationRequest{
			ProjectID: f.project.ID,
			Proposal:  validProposal(),
		})
		require.NoError(t, err)
		assert.Equal(t, f.project.ID, resp.ProjectID)
		assert.Equal(t, f.applicant.ID, resp.FreelancerID)
		assert.Equal(t, string(models.ApplicationStatusPending), resp.Status)
	})

	t.Run("missing project is 404", func(t *testing.T) {
		f := newApplicationFixture(t)

		_, err := f.svc.Apply(context.Background(), f.applicant.ID, dto.CreateApplicationRequest{
			ProjectID: "00000000-0000-0000-0000-000000000000",
			Proposal:  validProposal(),
		})
		assertHTTPCode(t, err, http.StatusNotFound)
	})

	t.Run("non-open project is 400 for everyone", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.project.Status = models.ProjectStatusClosed

		for _, caller := range []string{f.applicant.ID, f.employer.ID} {
			_, err := f.svc.Apply(context.Background(), caller, dto.CreateApplicationRequest{
				ProjectID: f.project.ID,
				Proposal:  validProposal(),
			})
			assertHTTPCode(t, err, http.StatusBadRequest)
		}
	})

	t.Run("second application is 409", func(t *testing.T) {
		f := newApplicationFixture(t)
		req := dto.CreateApplicationRequest{ProjectID: f.project.ID, Proposal: validProposal()}

		_, err := f.svc.Apply(context.Background(), f.applicant.ID, req)
		require.NoError(t, err)

		_, err = f.svc.Apply(context.Background(), f.applicant.ID, req)
		assertHTTPCode(t, err, http.StatusConflict)
	})

	t.Run("unique violation on insert is 409 even when the check raced", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.apps.createErr = repositories.ErrApplicationExists

		_, err := f.svc.Apply(context.Background(), f.applicant.ID, dto.CreateApplicationRequest{
			ProjectID: f.project.ID,
			Proposal:  validProposal(),
		})
		assertHTTPCode(t, err, http.StatusConflict)
	})
}

func TestApplicationServiceOwnership(t *testing.T) {
	f := newApplicationFixture(t)
	application := f.apps.add(&models.Application{
		ProjectID:    f.project.ID,
		FreelancerID: f.applicant.ID,
		Proposal:     validProposal(),
		Project:      f.project,
	})
	stranger := f.users.add(&models.User{Email: "other@chamba.co", Name: "Other"})

	t.Run("applicant and project owner can read", func(t *testing.T) {
		for _, caller := range []string{f.applicant.ID, f.employer.ID} {
			_, err := f.svc.Get(context.Background(), caller, application.ID)
			assert.NoError(t, err)
		}
	})

	t.Run("others get 403", func(t *testing.T) {
		_, err := f.svc.Get(context.Background(), stranger.ID, application.ID)
		assertHTTPCode(t, err, http.StatusForbidden)
	})

	t.Run("only the applicant can update", func(t *testing.T) {
		req := dto.UpdateApplicationRequest{Proposal: validProposal()}
		_, err := f.svc.Update(context.Background(), f.employer.ID, application.ID, req)
		assertHTTPCode(t, err, http.StatusForbidden)

		_, err = f.svc.Update(context.Background(), f.applicant.ID, application.ID, req)
		assert.NoError(t, err)
	})

	t.Run("only the applicant can withdraw", func(t *testing.T) {
		err := f.svc.Delete(context.Background(), stranger.ID, application.ID)
		assertHTTPCode(t, err, http.StatusForbidden)

		err = f.svc.Delete(context.Background(), f.applicant.ID, application.ID)
		assert.NoError(t, err)
	})
}

func TestApplicationServiceListForProject(t *testing.T) {
	f := newApplicationFixture(t)
	f.apps.add(&models.Application{ProjectID: f.project.ID, FreelancerID: f.applicant.ID, Proposal: validProposal()})

	t.Run("owner sees the applications", func(t *testing.T) {
		apps, err := f.svc.ListForProject(context.Background(), f.employer.ID, f.project.ID)
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		_, err := f.svc.ListForProject(context.Background(), f.applicant.ID, f.project.ID)
		assertHTTPCode(t, err, http.StatusForbidden)
	})
}

func assertHTTPCode(t *testing.T, err error, want int) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, want, appErr.HTTPCode)
}
