package postgres

import (
	"context"
	"errors"

	"go-pulse-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type journalRepository struct {
	db *pgxpool.Pool
}

func NewJournalRepository(db *pgxpool.Pool) domain.JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) GetByDate(ctx context.Context, userID, dateStr string) (*domain.JournalEntry, error) {
	query := `SELECT id, user_id, to_char(entry_date, 'YYYY-MM-DD'), content, created_at
	          FROM journals WHERE user_id = $1 AND entry_date = $2`

	var j domain.JournalEntry
	err := r.db.QueryRow(ctx, query, userID, dateStr).Scan(
		&j.ID, &j.UserID, &j.EntryDate, &j.Content, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &j, nil
}

func (r *journalRepository) Upsert(ctx context.Context, userID, dateStr, content string) error {
	query := `INSERT INTO journals (user_id, entry_date, content)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (user_id, entry_date) DO UPDATE SET
	              content = EXCLUDED.content`

	_, err := r.db.Exec(ctx, query, userID, dateStr, content)
	return err
}
