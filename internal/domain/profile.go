package domain

import (
	"context"
	"time"
)

// Profile is one row per user, keyed by the Supabase user id. Rows are
// created out-of-band; the app only ever updates them.
type Profile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
	Manager     string    `json:"manager"`
	GithubURL   string    `json:"github_url" validate:"omitempty,url"`
	LinkedinURL string    `json:"linkedin_url" validate:"omitempty,url"`
	Department  string    `json:"department"`
	TechStack   string    `json:"tech_stack"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProfileRepository interface {
	// GetByID returns nil without error when no row exists.
	GetByID(ctx context.Context, userID string) (*Profile, error)
	// Update never inserts; a missing row is a silent no-op.
	Update(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, profile *Profile) error
}
