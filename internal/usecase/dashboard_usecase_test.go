package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-pulse-backend/internal/domain"
	"go-pulse-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDashboardStats(t *testing.T) {
	t.Run("unauthenticated is a 401, not a panic", func(t *testing.T) {
		uc := usecase.NewDashboardUsecase(new(MockGoalRepo), new(MockProfileRepo))
		_, err := uc.GetStats(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unauthorized")
	})

	t.Run("profile name wins over token metadata", func(t *testing.T) {
		goalRepo := new(MockGoalRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewDashboardUsecase(goalRepo, profileRepo)
		ctx := authCtx("user1", "u@relanto.ai", "Token Name")

		goalRepo.On("CountBacklog", mock.Anything, "user1", mock.Anything).Return(3, nil)
		profileRepo.On("GetByID", mock.Anything, "user1").Return(&domain.Profile{
			ID:       "user1",
			FullName: "Stored Name",
			Role:     "SWE Intern",
		}, nil)

		stats, err := uc.GetStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "Stored Name", stats.Profile.FullName)
		assert.Equal(t, "SWE Intern", stats.Profile.Role)
		assert.Equal(t, "u@relanto.ai", stats.Profile.Email)
		assert.Equal(t, 3, stats.BacklogCount)
	})

	t.Run("missing profile falls back to token metadata and Intern role", func(t *testing.T) {
		goalRepo := new(MockGoalRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewDashboardUsecase(goalRepo, profileRepo)
		ctx := authCtx("user1", "u@relanto.ai", "Token Name")

		goalRepo.On("CountBacklog", mock.Anything, "user1", mock.Anything).Return(0, nil)
		profileRepo.On("GetByID", mock.Anything, "user1").Return(nil, nil)

		stats, err := uc.GetStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "Token Name", stats.Profile.FullName)
		assert.Equal(t, "Intern", stats.Profile.Role)
	})

	t.Run("progress numbers stay in range", func(t *testing.T) {
		goalRepo := new(MockGoalRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewDashboardUsecase(goalRepo, profileRepo)
		ctx := authCtx("user1", "u@relanto.ai", "")

		goalRepo.On("CountBacklog", mock.Anything, "user1", mock.Anything).Return(0, nil)
		profileRepo.On("GetByID", mock.Anything, "user1").Return(nil, nil)

		stats, err := uc.GetStats(ctx)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, stats.ProgressPercent, 0)
		assert.LessOrEqual(t, stats.ProgressPercent, 100)
		assert.GreaterOrEqual(t, stats.CurrentDay, 0)
		assert.Greater(t, stats.TotalDays, 0)
	})
}

func TestTodayGoalsOrdering(t *testing.T) {
	goalRepo := new(MockGoalRepo)
	uc := usecase.NewDashboardUsecase(goalRepo, new(MockProfileRepo))
	ctx := authCtx("user1", "u@relanto.ai", "")

	base := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
	goalRepo.On("ListByDate", mock.Anything, "user1", mock.Anything).Return([]domain.Goal{
		{ID: "done-late", Status: domain.GoalCompleted, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "pending-late", Status: domain.GoalPending, CreatedAt: base.Add(time.Hour)},
		{ID: "active", Status: domain.GoalInProgress, CreatedAt: base},
		{ID: "pending-early", Status: domain.GoalPending, CreatedAt: base},
		{ID: "done-early", Status: domain.GoalCompleted, CreatedAt: base},
	}, nil)

	goals, err := uc.GetTodayGoals(ctx)
	assert.NoError(t, err)

	order := make([]string, len(goals))
	for i, g := range goals {
		order[i] = g.ID
	}
	assert.Equal(t, []string{"pending-early", "pending-late", "active", "done-early", "done-late"}, order)
}
