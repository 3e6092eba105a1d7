package domain

import "context"

type GoalSummary struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Status GoalStatus `json:"status"`
}

// DaySummary is one weekday of a roadmap week: the date's goals plus the
// completed count.
type DaySummary struct {
	Date           string        `json:"date"`
	DayName        string        `json:"day_name"` // Mon..Fri
	Goals          []GoalSummary `json:"goals"`
	CompletedCount int           `json:"completed_count"`
}

type WeekWithDays struct {
	Week
	Days []DaySummary `json:"days"`
}

type RoadmapUsecase interface {
	GetRoadmapData(ctx context.Context) ([]WeekWithDays, error)
	UpdateWeekTitle(ctx context.Context, weekID, title string) error
}
