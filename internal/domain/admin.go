package domain

import "context"

type GoalCounts struct {
	Set       int
	Completed int
}

type InternStats struct {
	ID                  string `json:"id"`
	Email               string `json:"email"`
	FullName            string `json:"full_name,omitempty"`
	TotalGoalsSet       int    `json:"total_goals_set"`
	TotalGoalsCompleted int    `json:"total_goals_completed"`
}

type AdminRepository interface {
	// ListProfiles returns every profile ordered by full_name ascending.
	ListProfiles(ctx context.Context) ([]Profile, error)
	// GoalCountsByUser bulk-counts set/completed goals for the given users
	// in a single query.
	GoalCountsByUser(ctx context.Context, userIDs []string) (map[string]GoalCounts, error)
}

type AdminUsecase interface {
	GetInternsWithGoalStats(ctx context.Context) ([]InternStats, error)
}
