package domain

import "context"

type ProfileSummary struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type DashboardStats struct {
	ProgressPercent int            `json:"progress_percent"`
	CurrentDay      int            `json:"current_day"`
	TotalDays       int            `json:"total_days"`
	BacklogCount    int            `json:"backlog_count"`
	Profile         ProfileSummary `json:"profile"`
}

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
	// GetTodayGoals returns today's goals sorted by status rank
	// (pending < in_progress < completed), ties by creation time.
	GetTodayGoals(ctx context.Context) ([]Goal, error)
}
