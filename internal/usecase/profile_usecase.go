package usecase

import (
	"context"

	"go-pulse-backend/internal/domain"
	"go-pulse-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{repo: repo, validate: validate}
}

func (u *profileUsecase) GetProfile(ctx context.Context) (*domain.Profile, error) {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	profile, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return apperror.Unauthorized("Unauthorized")
	}

	// Force the ID to the context user so nobody edits a foreign profile.
	profile.ID = userID

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}
	return u.repo.Update(ctx, profile)
}
