package domain

import (
	"context"
	"time"
)

// PlannerData bundles everything the planner shows for one (user, date) pair.
type PlannerData struct {
	Date        string        `json:"date"`
	Goals       []Goal        `json:"goals"`
	Journal     *JournalEntry `json:"journal"`
	Attachments []Attachment  `json:"attachments"`
}

type PlannerUsecase interface {
	GetPlannerData(ctx context.Context, dateStr string) (*PlannerData, error)
	CreateGoal(ctx context.Context, dateStr, title string) error
	UpdateGoal(ctx context.Context, goalID string, upd GoalUpdate) error
	ToggleGoalStatus(ctx context.Context, goalID string, current GoalStatus) error
	DeleteGoal(ctx context.Context, goalID string) error
	SaveJournal(ctx context.Context, dateStr, content string) error
	UploadAttachment(ctx context.Context, dateStr string, up *AttachmentUpload) error
	DeleteAttachment(ctx context.Context, id, filePath string) error
	AttachmentSignedURL(ctx context.Context, id string, ttl time.Duration) (string, error)
}
