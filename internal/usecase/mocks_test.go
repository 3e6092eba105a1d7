package usecase_test

import (
	"context"
	"os"
	"testing"
	"time"

	"go-pulse-backend/internal/domain"
	"go-pulse-backend/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// authCtx returns a context carrying the identity keys the middleware sets.
func authCtx(userID, email, name string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
	return context.WithValue(ctx, domain.KeyUserName, name)
}

// Mock Repositories

type MockGoalRepo struct {
	mock.Mock
}

func (m *MockGoalRepo) ListByDate(ctx context.Context, userID, dateStr string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID, dateStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepo) ListByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepo) CountBacklog(ctx context.Context, userID, beforeDate string) (int, error) {
	args := m.Called(ctx, userID, beforeDate)
	return args.Int(0), args.Error(1)
}

func (m *MockGoalRepo) CompletedTitles(ctx context.Context, userID, excludeTitle string, limit int) ([]string, error) {
	args := m.Called(ctx, userID, excludeTitle, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGoalRepo) Create(ctx context.Context, goal *domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

func (m *MockGoalRepo) Update(ctx context.Context, userID, goalID string, upd domain.GoalUpdate) error {
	return m.Called(ctx, userID, goalID, upd).Error(0)
}

func (m *MockGoalRepo) Delete(ctx context.Context, userID, goalID string) error {
	return m.Called(ctx, userID, goalID).Error(0)
}

type MockJournalRepo struct {
	mock.Mock
}

func (m *MockJournalRepo) GetByDate(ctx context.Context, userID, dateStr string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, userID, dateStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepo) Upsert(ctx context.Context, userID, dateStr, content string) error {
	return m.Called(ctx, userID, dateStr, content).Error(0)
}

type MockAttachmentRepo struct {
	mock.Mock
}

func (m *MockAttachmentRepo) ListByDate(ctx context.Context, userID, dateStr string) ([]domain.Attachment, error) {
	args := m.Called(ctx, userID, dateStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepo) GetByID(ctx context.Context, userID, id string) (*domain.Attachment, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepo) Insert(ctx context.Context, att *domain.Attachment) error {
	return m.Called(ctx, att).Error(0)
}

func (m *MockAttachmentRepo) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, path string, data []byte, contentType string) error {
	return m.Called(ctx, path, data, contentType).Error(0)
}

func (m *MockObjectStore) CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, path, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) Remove(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

type MockWeekRepo struct {
	mock.Mock
}

func (m *MockWeekRepo) List(ctx context.Context) ([]domain.Week, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Week), args.Error(1)
}

func (m *MockWeekRepo) UpdateTitle(ctx context.Context, weekID, title string) error {
	return m.Called(ctx, weekID, title).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockAdminRepo) GoalCountsByUser(ctx context.Context, userIDs []string) (map[string]domain.GoalCounts, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.GoalCounts), args.Error(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockGenerator) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	args := m.Called(ctx, systemInstruction, prompt)
	return args.String(0), args.Error(1)
}
