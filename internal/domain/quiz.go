package domain

import "context"

// InterviewQuestion is the validated shape of a generated question.
// Exactly 4 options; the answer index points into them.
type InterviewQuestion struct {
	Question           string   `json:"question" validate:"required"`
	Options            []string `json:"options" validate:"len=4"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex" validate:"gte=0,lte=3"`
	Explanation        string   `json:"explanation" validate:"required"`
}

// QuestionGenerator is the external AI capability. Generate returns the raw
// model text; parsing and validation happen in the quiz usecase.
type QuestionGenerator interface {
	Configured() bool
	Generate(ctx context.Context, systemInstruction, prompt string) (string, error)
}

type QuizUsecase interface {
	// GetRandomGoalTopic picks a random distinct completed-goal title,
	// excluding one title if given, falling back to a fixed default topic.
	GetRandomGoalTopic(ctx context.Context, excludeTopic string) (string, error)
	GenerateInterviewQuestion(ctx context.Context, topic string) (*InterviewQuestion, error)
}
