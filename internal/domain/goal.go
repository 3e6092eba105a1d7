package domain

import (
	"context"
	"time"
)

type GoalStatus string

const (
	GoalPending    GoalStatus = "pending"
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
)

// Next advances the status through the fixed cycle
// pending -> in_progress -> completed -> pending.
func (s GoalStatus) Next() GoalStatus {
	switch s {
	case GoalPending:
		return GoalInProgress
	case GoalInProgress:
		return GoalCompleted
	default:
		return GoalPending
	}
}

// Rank orders statuses for display: pending < in_progress < completed.
func (s GoalStatus) Rank() int {
	switch s {
	case GoalPending:
		return 0
	case GoalInProgress:
		return 1
	default:
		return 2
	}
}

func (s GoalStatus) Valid() bool {
	return s == GoalPending || s == GoalInProgress || s == GoalCompleted
}

type Goal struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Title      string     `json:"title"`
	Status     GoalStatus `json:"status"`
	TargetDate string     `json:"target_date"` // YYYY-MM-DD
	CreatedAt  time.Time  `json:"created_at"`
}

// GoalUpdate is a partial update; nil fields are left untouched.
type GoalUpdate struct {
	Title  *string
	Status *GoalStatus
}

type GoalRepository interface {
	ListByDate(ctx context.Context, userID, dateStr string) ([]Goal, error)
	ListByUser(ctx context.Context, userID string) ([]Goal, error)
	CountBacklog(ctx context.Context, userID, beforeDate string) (int, error)
	CompletedTitles(ctx context.Context, userID, excludeTitle string, limit int) ([]string, error)
	Create(ctx context.Context, goal *Goal) error
	// Update and Delete match on both id and user_id; affecting zero rows
	// is not an error.
	Update(ctx context.Context, userID, goalID string, upd GoalUpdate) error
	Delete(ctx context.Context, userID, goalID string) error
}
