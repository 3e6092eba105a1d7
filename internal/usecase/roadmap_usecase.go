package usecase

import (
	"context"
	"strings"
	"time"

	"go-pulse-backend/internal/domain"
	"go-pulse-backend/pkg/apperror"
)

const untitledWeek = "Untitled"

type roadmapUsecase struct {
	weekRepo domain.WeekRepository
	goalRepo domain.GoalRepository
}

func NewRoadmapUsecase(weekRepo domain.WeekRepository, goalRepo domain.GoalRepository) domain.RoadmapUsecase {
	return &roadmapUsecase{weekRepo: weekRepo, goalRepo: goalRepo}
}

func (u *roadmapUsecase) GetRoadmapData(ctx context.Context) ([]domain.WeekWithDays, error) {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	weeks, err := u.weekRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// One bulk fetch; weeks are annotated from an in-memory date index.
	goals, err := u.goalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	goalsByDate := make(map[string][]domain.GoalSummary)
	for _, g := range goals {
		goalsByDate[g.TargetDate] = append(goalsByDate[g.TargetDate], domain.GoalSummary{
			ID:     g.ID,
			Title:  g.Title,
			Status: g.Status,
		})
	}

	result := make([]domain.WeekWithDays, 0, len(weeks))
	for _, w := range weeks {
		result = append(result, domain.WeekWithDays{
			Week: w,
			Days: buildWeekDays(w, goalsByDate),
		})
	}
	return result, nil
}

// buildWeekDays generates Mon–Fri summaries from the week's start date,
// stopping early when the week's end date truncates it.
func buildWeekDays(w domain.Week, goalsByDate map[string][]domain.GoalSummary) []domain.DaySummary {
	start, err := time.Parse(domain.DateLayout, w.StartDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(domain.DateLayout, w.EndDate)
	if err != nil {
		return nil
	}

	days := make([]domain.DaySummary, 0, 5)
	for i := 0; i < 5; i++ {
		d := start.AddDate(0, 0, i)
		if d.After(end) {
			break
		}
		dateStr := d.Format(domain.DateLayout)
		list := goalsByDate[dateStr]

		completed := 0
		for _, g := range list {
			if g.Status == domain.GoalCompleted {
				completed++
			}
		}
		days = append(days, domain.DaySummary{
			Date:           dateStr,
			DayName:        d.Format("Mon"),
			Goals:          list,
			CompletedCount: completed,
		})
	}
	return days
}

func (u *roadmapUsecase) UpdateWeekTitle(ctx context.Context, weekID, title string) error {
	if _, ok := userIDFromCtx(ctx); !ok {
		return apperror.Unauthorized("Unauthorized")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = untitledWeek
	}
	// Weeks are a shared document: any authenticated user may rename any
	// week, last write wins.
	return u.weekRepo.UpdateTitle(ctx, weekID, title)
}
