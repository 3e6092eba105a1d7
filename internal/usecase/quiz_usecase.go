package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"regexp"
	"strings"

	"go-pulse-backend/internal/domain"
	"go-pulse-backend/pkg/apperror"
	"go-pulse-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// DefaultTopics seed the quiz when the user has no completed goals to draw
// from (or all of them are excluded).
var DefaultTopics = []string{
	"Software Engineering Professionalism",
	"Agile Methodology",
	"System Design Fundamentals",
}

const completedTitlesLimit = 50

const questionSystemInstruction = `You are a Technical Team Lead mentoring an intern.
Generate exactly one multiple-choice question as JSON.
Target Level: Junior to Mid-level Developer.
Constraint: Keep the question scenario concise (max 3 sentences).
Output only valid JSON, no markdown or fences.
Format: {"question":"...","options":["A","B","C","D"],"correctAnswerIndex":0,"explanation":"..."}`

const questionPromptTemplate = `Context: The intern worked on: %q.
Generate 1 practical, scenario-based question.
- Difficulty: Challenging enough to test understanding, but not a complex Senior System Design problem.
- If Technical: Focus on common pitfalls, debugging, or standard patterns (e.g. "Why did this fail?" or "Which hook is better?").
- If Non-Technical: Focus on workplace professionalism or prioritization.
Output JSON only.`

type quizUsecase struct {
	goalRepo  domain.GoalRepository
	generator domain.QuestionGenerator
	validate  *validator.Validate
}

func NewQuizUsecase(goalRepo domain.GoalRepository, generator domain.QuestionGenerator, validate *validator.Validate) domain.QuizUsecase {
	return &quizUsecase{
		goalRepo:  goalRepo,
		generator: generator,
		validate:  validate,
	}
}

func (u *quizUsecase) GetRandomGoalTopic(ctx context.Context, excludeTopic string) (string, error) {
	userID, ok := userIDFromCtx(ctx)
	if !ok {
		return DefaultTopics[0], nil
	}

	excludeTopic = strings.TrimSpace(excludeTopic)
	titles, err := u.goalRepo.CompletedTitles(ctx, userID, excludeTopic, completedTitlesLimit)
	if err != nil || len(titles) == 0 {
		return randomDefaultTopic(), nil
	}

	// Dedupe while keeping the repository order, then pick at random.
	seen := make(map[string]bool, len(titles))
	unique := titles[:0]
	for _, t := range titles {
		if t == "" || seen[t] || t == excludeTopic {
			continue
		}
		seen[t] = true
		unique = append(unique, t)
	}
	if len(unique) == 0 {
		return randomDefaultTopic(), nil
	}
	return unique[rand.IntN(len(unique))], nil
}

func randomDefaultTopic() string {
	return DefaultTopics[rand.IntN(len(DefaultTopics))]
}

var codeFenceOpen = regexp.MustCompile("(?i)^```json\\s*")
var codeFenceClose = regexp.MustCompile("\\s*```$")

func (u *quizUsecase) GenerateInterviewQuestion(ctx context.Context, topic string) (*domain.InterviewQuestion, error) {
	if !u.generator.Configured() {
		return nil, apperror.New(http.StatusServiceUnavailable, "AI API key not configured.", nil)
	}

	prompt := fmt.Sprintf(questionPromptTemplate, topic)
	text, err := u.generator.Generate(ctx, questionSystemInstruction, prompt)
	if err != nil {
		return nil, apperror.New(http.StatusBadGateway, "AI error: "+err.Error(), err)
	}

	// Models occasionally wrap the payload in markdown fences despite the
	// instruction; strip them before parsing.
	raw := strings.TrimSpace(text)
	raw = codeFenceOpen.ReplaceAllString(raw, "")
	raw = codeFenceClose.ReplaceAllString(raw, "")
	raw = strings.TrimSpace(raw)

	var question domain.InterviewQuestion
	if err := json.Unmarshal([]byte(raw), &question); err != nil {
		logger.Log.Error("quiz response parse failed", "error", err)
		return nil, apperror.New(http.StatusBadGateway, "Invalid response format from AI", err)
	}
	if err := u.validate.Struct(&question); err != nil {
		logger.Log.Error("quiz response schema mismatch", "error", err)
		return nil, apperror.New(http.StatusBadGateway, "Invalid response format from AI", err)
	}
	return &question, nil
}
