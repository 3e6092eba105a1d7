package usecase_test

import (
	"testing"

	"go-pulse-backend/internal/domain"
	"go-pulse-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRoadmapAggregation(t *testing.T) {
	weekRepo := new(MockWeekRepo)
	goalRepo := new(MockGoalRepo)
	uc := usecase.NewRoadmapUsecase(weekRepo, goalRepo)
	ctx := authCtx("user1", "u@relanto.ai", "")

	weekRepo.On("List", mock.Anything).Return([]domain.Week{
		{ID: "w1", WeekNumber: 1, Title: "Onboarding", StartDate: "2026-02-02", EndDate: "2026-02-06"},
		{ID: "w2", WeekNumber: 2, Title: "Foundations", StartDate: "2026-02-09", EndDate: "2026-02-10"},
	}, nil)
	goalRepo.On("ListByUser", mock.Anything, "user1").Return([]domain.Goal{
		{ID: "g1", Title: "Setup laptop", Status: domain.GoalCompleted, TargetDate: "2026-02-02"},
		{ID: "g2", Title: "Meet the team", Status: domain.GoalPending, TargetDate: "2026-02-02"},
		{ID: "g3", Title: "Read the handbook", Status: domain.GoalCompleted, TargetDate: "2026-02-04"},
	}, nil)

	weeks, err := uc.GetRoadmapData(ctx)
	assert.NoError(t, err)
	assert.Len(t, weeks, 2)

	t.Run("full week gets five weekdays", func(t *testing.T) {
		days := weeks[0].Days
		assert.Len(t, days, 5)
		assert.Equal(t, "Mon", days[0].DayName)
		assert.Equal(t, "Fri", days[4].DayName)
	})

	t.Run("goals land on their day with completed counts", func(t *testing.T) {
		monday := weeks[0].Days[0]
		assert.Len(t, monday.Goals, 2)
		assert.Equal(t, 1, monday.CompletedCount)

		wednesday := weeks[0].Days[2]
		assert.Len(t, wednesday.Goals, 1)
		assert.Equal(t, 1, wednesday.CompletedCount)
	})

	t.Run("short week is truncated by its end date", func(t *testing.T) {
		assert.Len(t, weeks[1].Days, 2)
	})

	// Exactly one bulk fetch regardless of week count.
	goalRepo.AssertNumberOfCalls(t, "ListByUser", 1)
}

func TestUpdateWeekTitle(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		uc := usecase.NewRoadmapUsecase(new(MockWeekRepo), new(MockGoalRepo))
		err := uc.UpdateWeekTitle(authCtx("", "", ""), "w1", "New title")
		assert.Error(t, err)
	})

	t.Run("blank title becomes Untitled", func(t *testing.T) {
		weekRepo := new(MockWeekRepo)
		uc := usecase.NewRoadmapUsecase(weekRepo, new(MockGoalRepo))

		weekRepo.On("UpdateTitle", mock.Anything, "w1", "Untitled").Return(nil)
		err := uc.UpdateWeekTitle(authCtx("user1", "u@relanto.ai", ""), "w1", "   ")
		assert.NoError(t, err)
		weekRepo.AssertExpectations(t)
	})

	t.Run("title is trimmed", func(t *testing.T) {
		weekRepo := new(MockWeekRepo)
		uc := usecase.NewRoadmapUsecase(weekRepo, new(MockGoalRepo))

		weekRepo.On("UpdateTitle", mock.Anything, "w1", "Sprint Zero").Return(nil)
		err := uc.UpdateWeekTitle(authCtx("user1", "u@relanto.ai", ""), "w1", "  Sprint Zero  ")
		assert.NoError(t, err)
	})
}
