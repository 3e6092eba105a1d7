package usecase_test

import (
	"testing"

	"go-pulse-backend/internal/domain"
	"go-pulse-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminInternOverview(t *testing.T) {
	adminRepo := new(MockAdminRepo)
	uc := usecase.NewAdminUsecase(adminRepo, map[string]bool{"boss@relanto.ai": true})
	ctx := authCtx("admin1", "boss@relanto.ai", "")

	adminRepo.On("ListProfiles", mock.Anything).Return([]domain.Profile{
		{ID: "u1", Email: "alice@relanto.ai", FullName: "Alice"},
		{ID: "admin1", Email: "Boss@relanto.ai", FullName: "Boss"},
		{ID: "u2", Email: "bob@relanto.ai", FullName: "Bob"},
	}, nil)
	adminRepo.On("GoalCountsByUser", mock.Anything, []string{"u1", "u2"}).Return(map[string]domain.GoalCounts{
		"u1": {Set: 10, Completed: 7},
	}, nil)

	interns, err := uc.GetInternsWithGoalStats(ctx)
	assert.NoError(t, err)

	t.Run("allow-listed emails are excluded case-insensitively", func(t *testing.T) {
		assert.Len(t, interns, 2)
		assert.Equal(t, "alice@relanto.ai", interns[0].Email)
		assert.Equal(t, "bob@relanto.ai", interns[1].Email)
	})

	t.Run("counts are zipped onto the intern list", func(t *testing.T) {
		assert.Equal(t, 10, interns[0].TotalGoalsSet)
		assert.Equal(t, 7, interns[0].TotalGoalsCompleted)
		// No goals at all still yields a row
		assert.Equal(t, 0, interns[1].TotalGoalsSet)
		assert.Equal(t, 0, interns[1].TotalGoalsCompleted)
	})
}

func TestProfileUsecase(t *testing.T) {
	validate := validator.New()

	t.Run("missing profile is a 404", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(profileRepo, validate)

		profileRepo.On("GetByID", mock.Anything, "user1").Return(nil, nil)
		_, err := uc.GetProfile(authCtx("user1", "u@relanto.ai", ""))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Profile not found")
	})

	t.Run("update forces the ID from context", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(profileRepo, validate)

		profileRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.ID == "user1"
		})).Return(nil)

		err := uc.UpdateProfile(authCtx("user1", "u@relanto.ai", ""), &domain.Profile{
			ID:       "someone-else",
			FullName: "Alice",
		})
		assert.NoError(t, err)
		profileRepo.AssertExpectations(t)
	})

	t.Run("rejects malformed URLs", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(profileRepo, validate)

		err := uc.UpdateProfile(authCtx("user1", "u@relanto.ai", ""), &domain.Profile{
			GithubURL: "not a url",
		})
		assert.Error(t, err)
		profileRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
