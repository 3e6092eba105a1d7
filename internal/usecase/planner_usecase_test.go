package usecase_test

import (
	"errors"
	"testing"
	"time"

	"go-pulse-backend/internal/domain"
	"go-pulse-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPlannerFixture() (*MockGoalRepo, *MockJournalRepo, *MockAttachmentRepo, *MockObjectStore, domain.PlannerUsecase) {
	goalRepo := new(MockGoalRepo)
	journalRepo := new(MockJournalRepo)
	attachmentRepo := new(MockAttachmentRepo)
	store := new(MockObjectStore)
	uc := usecase.NewPlannerUsecase(goalRepo, journalRepo, attachmentRepo, store)
	return goalRepo, journalRepo, attachmentRepo, store, uc
}

func TestPlannerDateClamping(t *testing.T) {
	today := time.Now().Format(domain.DateLayout)

	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"valid date inside the window is kept", "2026-03-15", "2026-03-15"},
		{"date before the program start falls back to today", "2026-01-01", today},
		{"date after the program end falls back to today", "2026-07-15", today},
		{"garbage falls back to today", "not-a-date", today},
		{"empty falls back to today", "", today},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			goalRepo, journalRepo, attachmentRepo, _, uc := newPlannerFixture()
			ctx := authCtx("user1", "u@relanto.ai", "Intern One")

			goalRepo.On("ListByDate", mock.Anything, "user1", tc.expected).Return([]domain.Goal{}, nil)
			journalRepo.On("GetByDate", mock.Anything, "user1", tc.expected).Return(nil, nil)
			attachmentRepo.On("ListByDate", mock.Anything, "user1", tc.expected).Return([]domain.Attachment{}, nil)

			data, err := uc.GetPlannerData(ctx, tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, data.Date)
			goalRepo.AssertExpectations(t)
		})
	}
}

func TestPlannerUnauthenticated(t *testing.T) {
	_, _, _, _, uc := newPlannerFixture()
	ctx := authCtx("", "", "") // keys present but empty

	_, err := uc.GetPlannerData(ctx, "2026-03-15")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized")

	err = uc.CreateGoal(ctx, "2026-03-15", "Learn Go")
	assert.Error(t, err)
}

func TestCreateGoalDefaults(t *testing.T) {
	t.Run("blank title becomes Untitled Goal", func(t *testing.T) {
		goalRepo, _, _, _, uc := newPlannerFixture()
		ctx := authCtx("user1", "u@relanto.ai", "")

		goalRepo.On("Create", mock.Anything, mock.MatchedBy(func(g *domain.Goal) bool {
			return g.Title == "Untitled Goal" && g.Status == domain.GoalPending && g.UserID == "user1"
		})).Return(nil)

		err := uc.CreateGoal(ctx, "2026-03-15", "   ")
		assert.NoError(t, err)
		goalRepo.AssertExpectations(t)
	})

	t.Run("title is trimmed", func(t *testing.T) {
		goalRepo, _, _, _, uc := newPlannerFixture()
		ctx := authCtx("user1", "u@relanto.ai", "")

		goalRepo.On("Create", mock.Anything, mock.MatchedBy(func(g *domain.Goal) bool {
			return g.Title == "Ship the parser"
		})).Return(nil)

		err := uc.CreateGoal(ctx, "2026-03-15", "  Ship the parser  ")
		assert.NoError(t, err)
	})
}

func TestUpdateGoalValidation(t *testing.T) {
	goalRepo, _, _, _, uc := newPlannerFixture()
	ctx := authCtx("user1", "u@relanto.ai", "")

	t.Run("rejects unknown status", func(t *testing.T) {
		bad := domain.GoalStatus("done")
		err := uc.UpdateGoal(ctx, "g1", domain.GoalUpdate{Status: &bad})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid goal status")
	})

	t.Run("scopes the update to the context user", func(t *testing.T) {
		title := "New title"
		goalRepo.On("Update", mock.Anything, "user1", "g1", mock.Anything).Return(nil)
		err := uc.UpdateGoal(ctx, "g1", domain.GoalUpdate{Title: &title})
		assert.NoError(t, err)
		goalRepo.AssertExpectations(t)
	})
}

func TestToggleGoalStatusCycle(t *testing.T) {
	cases := []struct {
		current domain.GoalStatus
		next    domain.GoalStatus
	}{
		{domain.GoalPending, domain.GoalInProgress},
		{domain.GoalInProgress, domain.GoalCompleted},
		{domain.GoalCompleted, domain.GoalPending},
		{domain.GoalStatus("bogus"), domain.GoalPending}, // unknown input restarts the cycle
	}

	for _, tc := range cases {
		t.Run(string(tc.current), func(t *testing.T) {
			goalRepo, _, _, _, uc := newPlannerFixture()
			ctx := authCtx("user1", "u@relanto.ai", "")

			goalRepo.On("Update", mock.Anything, "user1", "g1", mock.MatchedBy(func(upd domain.GoalUpdate) bool {
				return upd.Status != nil && *upd.Status == tc.next && upd.Title == nil
			})).Return(nil)

			err := uc.ToggleGoalStatus(ctx, "g1", tc.current)
			assert.NoError(t, err)
			goalRepo.AssertExpectations(t)
		})
	}
}

func TestUploadAttachment(t *testing.T) {
	ctx := authCtx("user1", "u@relanto.ai", "")
	content := []byte("weekly report: shipped the importer")

	t.Run("rejects empty payload", func(t *testing.T) {
		_, _, _, _, uc := newPlannerFixture()
		err := uc.UploadAttachment(ctx, "2026-03-15", &domain.AttachmentUpload{FileName: "notes.txt"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "No file provided")
	})

	t.Run("stores object then row with a user-scoped key", func(t *testing.T) {
		_, _, attachmentRepo, store, uc := newPlannerFixture()

		store.On("Put", mock.Anything, mock.MatchedBy(func(path string) bool {
			return len(path) > 6 && path[:6] == "user1/"
		}), content, mock.Anything).Return(nil)
		attachmentRepo.On("Insert", mock.Anything, mock.MatchedBy(func(att *domain.Attachment) bool {
			return att.UserID == "user1" && att.EntryDate == "2026-03-15" && att.FileName == "notes.txt"
		})).Return(nil)

		err := uc.UploadAttachment(ctx, "2026-03-15", &domain.AttachmentUpload{
			FileName:    "notes.txt",
			ContentType: "text/plain",
			Size:        int64(len(content)),
			Data:        content,
		})
		assert.NoError(t, err)
		store.AssertExpectations(t)
		attachmentRepo.AssertExpectations(t)
	})

	t.Run("removes the object when the row insert fails", func(t *testing.T) {
		_, _, attachmentRepo, store, uc := newPlannerFixture()

		store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		attachmentRepo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
		store.On("Remove", mock.Anything, mock.Anything).Return(nil)

		err := uc.UploadAttachment(ctx, "2026-03-15", &domain.AttachmentUpload{
			FileName:    "notes.txt",
			ContentType: "text/plain",
			Size:        int64(len(content)),
			Data:        content,
		})
		assert.Error(t, err)
		store.AssertCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("rejects disallowed extensions", func(t *testing.T) {
		_, _, _, _, uc := newPlannerFixture()
		err := uc.UploadAttachment(ctx, "2026-03-15", &domain.AttachmentUpload{
			FileName: "payload.exe",
			Size:     4,
			Data:     []byte{0x4D, 0x5A, 0x00, 0x00},
		})
		assert.Error(t, err)
	})
}

func TestDeleteAttachment(t *testing.T) {
	ctx := authCtx("user1", "u@relanto.ai", "")

	t.Run("removes row first, then object", func(t *testing.T) {
		_, _, attachmentRepo, store, uc := newPlannerFixture()

		attachmentRepo.On("Delete", mock.Anything, "user1", "a1").Return(nil)
		store.On("Remove", mock.Anything, "user1/file.txt").Return(nil)

		err := uc.DeleteAttachment(ctx, "a1", "user1/file.txt")
		assert.NoError(t, err)
		attachmentRepo.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("object removal failure does not fail the delete", func(t *testing.T) {
		_, _, attachmentRepo, store, uc := newPlannerFixture()

		attachmentRepo.On("Delete", mock.Anything, "user1", "a1").Return(nil)
		store.On("Remove", mock.Anything, "user1/file.txt").Return(errors.New("object missing"))

		err := uc.DeleteAttachment(ctx, "a1", "user1/file.txt")
		assert.NoError(t, err)
	})

	t.Run("row delete failure leaves the object untouched", func(t *testing.T) {
		_, _, attachmentRepo, store, uc := newPlannerFixture()

		attachmentRepo.On("Delete", mock.Anything, "user1", "a1").Return(errors.New("db down"))

		err := uc.DeleteAttachment(ctx, "a1", "user1/file.txt")
		assert.Error(t, err)
		store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})
}

func TestAttachmentSignedURL(t *testing.T) {
	ctx := authCtx("user1", "u@relanto.ai", "")

	t.Run("unknown attachment is a 404", func(t *testing.T) {
		_, _, attachmentRepo, _, uc := newPlannerFixture()
		attachmentRepo.On("GetByID", mock.Anything, "user1", "missing").Return(nil, nil)

		_, err := uc.AttachmentSignedURL(ctx, "missing", time.Hour)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Attachment not found")
	})

	t.Run("signs the stored path", func(t *testing.T) {
		_, _, attachmentRepo, store, uc := newPlannerFixture()
		attachmentRepo.On("GetByID", mock.Anything, "user1", "a1").Return(&domain.Attachment{
			ID:       "a1",
			FilePath: "user1/2026-03-15_x_file.txt",
		}, nil)
		store.On("CreateSignedURL", mock.Anything, "user1/2026-03-15_x_file.txt", time.Hour).
			Return("https://signed.example/file", nil)

		url, err := uc.AttachmentSignedURL(ctx, "a1", time.Hour)
		assert.NoError(t, err)
		assert.Equal(t, "https://signed.example/file", url)
	})
}
