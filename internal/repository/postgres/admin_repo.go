package postgres

import (
	"context"

	"go-pulse-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY full_name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(
			&p.ID, &p.Email, &p.FullName, &p.Role, &p.Manager,
			&p.GithubURL, &p.LinkedinURL, &p.Department, &p.TechStack, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *adminRepository) GoalCountsByUser(ctx context.Context, userIDs []string) (map[string]domain.GoalCounts, error) {
	counts := make(map[string]domain.GoalCounts, len(userIDs))
	if len(userIDs) == 0 {
		return counts, nil
	}

	query := `SELECT user_id,
	                 COUNT(*),
	                 COUNT(*) FILTER (WHERE status = 'completed')
	          FROM goals WHERE user_id = ANY($1)
	          GROUP BY user_id`

	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var c domain.GoalCounts
		if err := rows.Scan(&userID, &c.Set, &c.Completed); err != nil {
			return nil, err
		}
		counts[userID] = c
	}
	return counts, rows.Err()
}
