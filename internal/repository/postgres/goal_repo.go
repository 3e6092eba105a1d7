package postgres

import (
	"context"

	"go-pulse-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type goalRepository struct {
	db *pgxpool.Pool
}

func NewGoalRepository(db *pgxpool.Pool) domain.GoalRepository {
	return &goalRepository{db: db}
}

const goalColumns = `id, user_id, title, status, to_char(target_date, 'YYYY-MM-DD'), created_at`

func (r *goalRepository) ListByDate(ctx context.Context, userID, dateStr string) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + `
	          FROM goals WHERE user_id = $1 AND target_date = $2
	          ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, userID, dateStr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGoals(rows)
}

func (r *goalRepository) ListByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + `
	          FROM goals WHERE user_id = $1
	          ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGoals(rows)
}

func (r *goalRepository) CountBacklog(ctx context.Context, userID, beforeDate string) (int, error) {
	query := `SELECT COUNT(*) FROM goals
	          WHERE user_id = $1 AND target_date < $2 AND status <> 'completed'`

	var count int
	if err := r.db.QueryRow(ctx, query, userID, beforeDate).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *goalRepository) CompletedTitles(ctx context.Context, userID, excludeTitle string, limit int) ([]string, error) {
	query := `SELECT title FROM goals
	          WHERE user_id = $1 AND status = 'completed' AND ($2 = '' OR title <> $2)
	          LIMIT $3`

	rows, err := r.db.Query(ctx, query, userID, excludeTitle, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}

func (r *goalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	query := `INSERT INTO goals (user_id, title, status, target_date)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		goal.UserID, goal.Title, goal.Status, goal.TargetDate,
	).Scan(&goal.ID, &goal.CreatedAt)
}

func (r *goalRepository) Update(ctx context.Context, userID, goalID string, upd domain.GoalUpdate) error {
	// COALESCE keeps columns whose update field is nil; a zero-row match
	// (wrong id or wrong owner) is a silent no-op.
	query := `UPDATE goals
	          SET title = COALESCE($1, title), status = COALESCE($2, status)
	          WHERE id = $3 AND user_id = $4`

	_, err := r.db.Exec(ctx, query, upd.Title, upd.Status, goalID, userID)
	return err
}

func (r *goalRepository) Delete(ctx context.Context, userID, goalID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	return err
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanGoals(rows pgxRows) ([]domain.Goal, error) {
	var goals []domain.Goal
	for rows.Next() {
		var g domain.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Status, &g.TargetDate, &g.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}
