package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"go-pulse-backend/internal/domain"
	"go-pulse-backend/pkg/apperror"
)

type dashboardUsecase struct {
	goalRepo    domain.GoalRepository
	profileRepo domain.ProfileRepository
	now         func() time.Time
}

func NewDashboardUsecase(goalRepo domain.GoalRepository, profileRepo domain.ProfileRepository) domain.DashboardUsecase {
	return &dashboardUsecase{
		goalRepo:    goalRepo,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

func (u *dashboardUsecase) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	now := u.now()
	progressPercent, currentDay, totalDays := domain.ProgramProgress(now)

	todayStr := now.Format(domain.DateLayout)
	backlog, err := u.goalRepo.CountBacklog(ctx, userID, todayStr)
	if err != nil {
		return nil, err
	}

	// Stored profile may be missing or have a blank name; fall back to the
	// identity-provider metadata, then to nothing (handler shows email).
	summary := domain.ProfileSummary{
		Email: emailFromCtx(ctx),
		Role:  "Intern",
	}
	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		if name := strings.TrimSpace(profile.FullName); name != "" {
			summary.FullName = name
		}
		if profile.Role != "" {
			summary.Role = profile.Role
		}
	}
	if summary.FullName == "" {
		summary.FullName = strings.TrimSpace(fullNameFromCtx(ctx))
	}

	return &domain.DashboardStats{
		ProgressPercent: progressPercent,
		CurrentDay:      currentDay,
		TotalDays:       totalDays,
		BacklogCount:    backlog,
		Profile:         summary,
	}, nil
}

func (u *dashboardUsecase) GetTodayGoals(ctx context.Context) ([]domain.Goal, error) {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	goals, err := u.goalRepo.ListByDate(ctx, userID, u.now().Format(domain.DateLayout))
	if err != nil {
		return nil, err
	}

	sortGoalsForDisplay(goals)
	return goals, nil
}

// sortGoalsForDisplay orders pending < in_progress < completed, ties broken
// by ascending creation time.
func sortGoalsForDisplay(goals []domain.Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		if goals[i].Status.Rank() != goals[j].Status.Rank() {
			return goals[i].Status.Rank() < goals[j].Status.Rank()
		}
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})
}
