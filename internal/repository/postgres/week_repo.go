package postgres

import (
	"context"

	"go-pulse-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type weekRepository struct {
	db *pgxpool.Pool
}

func NewWeekRepository(db *pgxpool.Pool) domain.WeekRepository {
	return &weekRepository{db: db}
}

func (r *weekRepository) List(ctx context.Context) ([]domain.Week, error) {
	query := `SELECT id, week_number, title, phase,
	                 to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD')
	          FROM weeks ORDER BY week_number ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weeks []domain.Week
	for rows.Next() {
		var w domain.Week
		if err := rows.Scan(&w.ID, &w.WeekNumber, &w.Title, &w.Phase, &w.StartDate, &w.EndDate); err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}

func (r *weekRepository) UpdateTitle(ctx context.Context, weekID, title string) error {
	_, err := r.db.Exec(ctx, `UPDATE weeks SET title = $1 WHERE id = $2`, title, weekID)
	return err
}
