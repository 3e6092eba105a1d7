package domain

import (
	"context"
	"time"
)

type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EntryDate string    `json:"entry_date"` // YYYY-MM-DD
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type JournalRepository interface {
	// GetByDate returns nil without error when no entry exists for the day.
	GetByDate(ctx context.Context, userID, dateStr string) (*JournalEntry, error)
	// Upsert keys on (user_id, entry_date) so each user has at most one
	// entry per day.
	Upsert(ctx context.Context, userID, dateStr, content string) error
}
