package usecase

import (
	"context"

	"go-pulse-backend/internal/domain"
)

// Identity helpers: the auth middleware stores the Supabase claims on the
// request context under domain.CtxKey values.

func userIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(domain.KeyUserID).(string)
	return id, ok && id != ""
}

func emailFromCtx(ctx context.Context) string {
	email, _ := ctx.Value(domain.KeyUserEmail).(string)
	return email
}

func fullNameFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(domain.KeyUserName).(string)
	return name
}
