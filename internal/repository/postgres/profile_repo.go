package postgres

import (
	"context"
	"errors"

	"go-pulse-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `id, COALESCE(email, ''), COALESCE(full_name, ''), COALESCE(role, 'Intern'),
	COALESCE(manager, ''), COALESCE(github_url, ''), COALESCE(linkedin_url, ''),
	COALESCE(department, ''), COALESCE(tech_stack, ''), updated_at`

func (r *profileRepository) GetByID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.Email, &p.FullName, &p.Role, &p.Manager,
		&p.GithubURL, &p.LinkedinURL, &p.Department, &p.TechStack, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	// Profiles are provisioned out-of-band; update only, never insert.
	query := `UPDATE profiles SET
	              full_name = $1, manager = $2, github_url = $3, linkedin_url = $4,
	              department = $5, role = $6, tech_stack = $7, updated_at = NOW()
	          WHERE id = $8`

	_, err := r.db.Exec(ctx, query,
		profile.FullName, profile.Manager, profile.GithubURL, profile.LinkedinURL,
		profile.Department, profile.Role, profile.TechStack, profile.ID,
	)
	return err
}
