package v1

import (
	"net/http"

	"go-pulse-backend/internal/delivery/http/response"
	"go-pulse-backend/internal/domain"
	"go-pulse-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizUC domain.QuizUsecase
}

func NewQuizHandler(rg *gin.RouterGroup, quizUC domain.QuizUsecase) {
	handler := &QuizHandler{quizUC: quizUC}

	quiz := rg.Group("/quiz")
	{
		quiz.GET("/topic", handler.GetTopic)
		quiz.POST("/question", handler.GenerateQuestion)
	}
}

// GetTopic godoc
// @Summary      Quiz topic
// @Description  Random topic from the intern's completed goals, with built-in fallbacks
// @Tags         quiz
// @Produce      json
// @Param        exclude  query     string  false  "Topic to exclude (e.g. the previous one)"
// @Success      200      {object}  response.Response
// @Router       /quiz/topic [get]
// @Security     BearerAuth
func (h *QuizHandler) GetTopic(c *gin.Context) {
	topic, err := h.quizUC.GetRandomGoalTopic(c.Request.Context(), c.Query("exclude"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Quiz topic", gin.H{"topic": topic})
}

type GenerateQuestionRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// GenerateQuestion godoc
// @Summary      Generate interview question
// @Description  One multiple-choice question on the topic, generated by the AI backend
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateQuestionRequest  true  "Topic"
// @Success      200      {object}  response.Response{data=domain.InterviewQuestion}
// @Failure      400      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /quiz/question [post]
// @Security     BearerAuth
func (h *QuizHandler) GenerateQuestion(c *gin.Context) {
	var req GenerateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	question, err := h.quizUC.GenerateInterviewQuestion(c.Request.Context(), req.Topic)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview question", question)
}
