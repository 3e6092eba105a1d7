package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-pulse-backend/internal/domain"
	"go-pulse-backend/pkg/apperror"
	"go-pulse-backend/pkg/logger"
	"go-pulse-backend/pkg/upload"

	"github.com/google/uuid"
)

const untitledGoal = "Untitled Goal"

type plannerUsecase struct {
	goalRepo       domain.GoalRepository
	journalRepo    domain.JournalRepository
	attachmentRepo domain.AttachmentRepository
	store          domain.ObjectStore
	now            func() time.Time
}

func NewPlannerUsecase(
	goalRepo domain.GoalRepository,
	journalRepo domain.JournalRepository,
	attachmentRepo domain.AttachmentRepository,
	store domain.ObjectStore,
) domain.PlannerUsecase {
	return &plannerUsecase{
		goalRepo:       goalRepo,
		journalRepo:    journalRepo,
		attachmentRepo: attachmentRepo,
		store:          store,
		now:            time.Now,
	}
}

func (u *plannerUsecase) GetPlannerData(ctx context.Context, dateStr string) (*domain.PlannerData, error) {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	dateStr = domain.ClampPlannerDate(dateStr, u.now())

	goals, err := u.goalRepo.ListByDate(ctx, userID, dateStr)
	if err != nil {
		return nil, err
	}
	sortGoalsForDisplay(goals)

	journal, err := u.journalRepo.GetByDate(ctx, userID, dateStr)
	if err != nil {
		return nil, err
	}

	attachments, err := u.attachmentRepo.ListByDate(ctx, userID, dateStr)
	if err != nil {
		return nil, err
	}

	return &domain.PlannerData{
		Date:        dateStr,
		Goals:       goals,
		Journal:     journal,
		Attachments: attachments,
	}, nil
}

func (u *plannerUsecase) CreateGoal(ctx context.Context, dateStr, title string) error {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return apperror.Unauthorized("Unauthorized")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = untitledGoal
	}

	goal := &domain.Goal{
		UserID:     userID,
		Title:      title,
		Status:     domain.GoalPending,
		TargetDate: dateStr,
	}
	return u.goalRepo.Create(ctx, goal)
}

func (u *plannerUsecase) UpdateGoal(ctx context.Context, goalID string, upd domain.GoalUpdate) error {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return apperror.Unauthorized("Unauthorized")
	}

	if upd.Title != nil {
		trimmed := strings.TrimSpace(*upd.Title)
		upd.Title = &trimmed
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return apperror.BadRequest("invalid goal status")
	}

	// A zero-row match (foreign id or foreign owner) is a silent no-op.
	return u.goalRepo.Update(ctx, userID, goalID, upd)
}

func (u *plannerUsecase) ToggleGoalStatus(ctx context.Context, goalID string, current domain.GoalStatus) error {
	next := current.Next()
	return u.UpdateGoal(ctx, goalID, domain.GoalUpdate{Status: &next})
}

func (u *plannerUsecase) DeleteGoal(ctx context.Context, goalID string) error {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return apperror.Unauthorized("Unauthorized")
	}
	return u.goalRepo.Delete(ctx, userID, goalID)
}

func (u *plannerUsecase) SaveJournal(ctx context.Context, dateStr, content string) error {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return apperror.Unauthorized("Unauthorized")
	}
	return u.journalRepo.Upsert(ctx, userID, dateStr, content)
}

func (u *plannerUsecase) UploadAttachment(ctx context.Context, dateStr string, up *domain.AttachmentUpload) error {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return apperror.Unauthorized("Unauthorized")
	}

	if up == nil || up.Size == 0 || len(up.Data) == 0 {
		return apperror.BadRequest("No file provided")
	}
	if up.Size > upload.MaxFileSize {
		return apperror.BadRequest(upload.ErrTooLarge.Error())
	}

	contentType := http.DetectContentType(up.Data)
	if err := upload.Validate(up.FileName, up.Data, contentType); err != nil {
		return apperror.BadRequest(err.Error())
	}

	// Images are recompressed before storage; failures fall back to the
	// original bytes rather than rejecting the upload.
	data := up.Data
	if strings.HasPrefix(contentType, "image/") {
		if compressed, err := upload.CompressImage(up.Data); err == nil {
			data = compressed
			contentType = "image/jpeg"
		} else {
			logger.Log.Warn("image compression failed, storing original", "error", err)
		}
	}

	storagePath := fmt.Sprintf("%s/%s_%s_%s",
		userID, dateStr, uuid.NewString(), upload.SanitizeFilename(up.FileName))

	// Object first, row second: a failed insert rolls the object back so
	// storage never holds orphans.
	if err := u.store.Put(ctx, storagePath, data, contentType); err != nil {
		return apperror.New(http.StatusBadGateway, err.Error(), err)
	}

	att := &domain.Attachment{
		UserID:    userID,
		EntryDate: dateStr,
		FileName:  up.FileName,
		FilePath:  storagePath,
		FileType:  contentType,
		FileSize:  int64(len(data)),
	}
	if err := u.attachmentRepo.Insert(ctx, att); err != nil {
		if rmErr := u.store.Remove(ctx, storagePath); rmErr != nil {
			logger.Log.Error("failed to roll back orphaned object", "path", storagePath, "error", rmErr)
		}
		return err
	}
	return nil
}

func (u *plannerUsecase) DeleteAttachment(ctx context.Context, id, filePath string) error {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return apperror.Unauthorized("Unauthorized")
	}

	// Row first: if the delete fails the object stays untouched. The
	// object removal afterwards is best-effort; an orphaned object is an
	// accepted risk, a dangling row is not.
	if err := u.attachmentRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	if filePath != "" {
		if err := u.store.Remove(ctx, filePath); err != nil {
			logger.Log.Warn("failed to remove attachment object", "path", filePath, "error", err)
		}
	}
	return nil
}

func (u *plannerUsecase) AttachmentSignedURL(ctx context.Context, id string, ttl time.Duration) (string, error) {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return "", apperror.Unauthorized("Unauthorized")
	}

	att, err := u.attachmentRepo.GetByID(ctx, userID, id)
	if err != nil {
		return "", err
	}
	if att == nil {
		return "", apperror.NotFound("Attachment not found")
	}
	return u.store.CreateSignedURL(ctx, att.FilePath, ttl)
}
