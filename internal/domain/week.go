package domain

import "context"

type Week struct {
	ID         string `json:"id"`
	WeekNumber int    `json:"week_number"`
	Title      string `json:"title"`
	Phase      string `json:"phase"` // "Virtual" or "In-Office"
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

type WeekRepository interface {
	// List returns all weeks ordered by week_number. Rows are seeded
	// externally; the app never inserts them.
	List(ctx context.Context) ([]Week, error)
	// UpdateTitle is deliberately not user-scoped: any authenticated user
	// may rename any week (shared-document semantics).
	UpdateTitle(ctx context.Context, weekID, title string) error
}
