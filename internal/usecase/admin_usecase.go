package usecase

import (
	"context"
	"strings"

	"go-pulse-backend/internal/domain"
	"go-pulse-backend/pkg/apperror"
)

type adminUsecase struct {
	adminRepo domain.AdminRepository
	// Lowercased admin emails, injected from config so tests can substitute
	// the allow-list without touching the environment.
	adminEmails map[string]bool
}

func NewAdminUsecase(adminRepo domain.AdminRepository, adminEmails map[string]bool) domain.AdminUsecase {
	return &adminUsecase{adminRepo: adminRepo, adminEmails: adminEmails}
}

func (u *adminUsecase) GetInternsWithGoalStats(ctx context.Context) ([]domain.InternStats, error) {
	if _, ok := userIDFromCtx(ctx); !ok {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	profiles, err := u.adminRepo.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	interns := make([]domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		if !u.adminEmails[strings.ToLower(p.Email)] {
			interns = append(interns, p)
		}
	}

	ids := make([]string, len(interns))
	for i, p := range interns {
		ids[i] = p.ID
	}

	counts, err := u.adminRepo.GoalCountsByUser(ctx, ids)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.InternStats, len(interns))
	for i, p := range interns {
		c := counts[p.ID]
		stats[i] = domain.InternStats{
			ID:                  p.ID,
			Email:               p.Email,
			FullName:            p.FullName,
			TotalGoalsSet:       c.Set,
			TotalGoalsCompleted: c.Completed,
		}
	}
	return stats, nil
}
