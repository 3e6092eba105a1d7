package v1

import (
	"io"
	"net/http"
	"time"

	"go-pulse-backend/internal/delivery/http/response"
	"go-pulse-backend/internal/domain"
	"go-pulse-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// signedURLTTL is how long attachment download links stay valid.
const signedURLTTL = 1 * time.Hour

type PlannerHandler struct {
	plannerUC domain.PlannerUsecase
}

func NewPlannerHandler(rg *gin.RouterGroup, plannerUC domain.PlannerUsecase, uploadLimiter gin.HandlerFunc) {
	handler := &PlannerHandler{plannerUC: plannerUC}

	planner := rg.Group("/planner")
	{
		planner.GET("", handler.GetPlannerData)

		planner.POST("/goals", handler.CreateGoal)
		planner.PATCH("/goals/:id", handler.UpdateGoal)
		planner.POST("/goals/:id/toggle", handler.ToggleGoal)
		planner.DELETE("/goals/:id", handler.DeleteGoal)

		planner.PUT("/journal", handler.SaveJournal)

		planner.POST("/attachments", uploadLimiter, handler.UploadAttachment)
		planner.DELETE("/attachments/:id", handler.DeleteAttachment)
		planner.GET("/attachments/:id/url", handler.AttachmentURL)
	}
}

// GetPlannerData godoc
// @Summary      Planner day bundle
// @Description  Goals, journal and attachments for one date. Dates outside the program window fall back to today.
// @Tags         planner
// @Produce      json
// @Param        date  query     string  false  "Date (YYYY-MM-DD)"
// @Success      200   {object}  response.Response{data=domain.PlannerData}
// @Failure      401   {object}  response.Response
// @Router       /planner [get]
// @Security     BearerAuth
func (h *PlannerHandler) GetPlannerData(c *gin.Context) {
	data, err := h.plannerUC.GetPlannerData(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Planner data", data)
}

type CreateGoalRequest struct {
	Date  string `json:"date" binding:"required"`
	Title string `json:"title"`
}

// CreateGoal godoc
// @Summary      Create goal
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        goal  body      CreateGoalRequest  true  "Goal"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /planner/goals [post]
// @Security     BearerAuth
func (h *PlannerHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.plannerUC.CreateGoal(c.Request.Context(), req.Date, req.Title); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Goal created", nil)
}

type UpdateGoalRequest struct {
	Title  *string            `json:"title"`
	Status *domain.GoalStatus `json:"status"`
}

// UpdateGoal godoc
// @Summary      Update goal
// @Description  Partial update of title and/or status
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Goal ID"
// @Param        goal  body      UpdateGoalRequest  true  "Fields to update"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /planner/goals/{id} [patch]
// @Security     BearerAuth
func (h *PlannerHandler) UpdateGoal(c *gin.Context) {
	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	upd := domain.GoalUpdate{Title: req.Title, Status: req.Status}
	if err := h.plannerUC.UpdateGoal(c.Request.Context(), c.Param("id"), upd); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Goal updated", nil)
}

type ToggleGoalRequest struct {
	CurrentStatus domain.GoalStatus `json:"current_status" binding:"required"`
}

// ToggleGoal godoc
// @Summary      Cycle goal status
// @Description  pending -> in_progress -> completed -> pending
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        id      path      string             true  "Goal ID"
// @Param        toggle  body      ToggleGoalRequest  true  "Current status"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /planner/goals/{id}/toggle [post]
// @Security     BearerAuth
func (h *PlannerHandler) ToggleGoal(c *gin.Context) {
	var req ToggleGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.plannerUC.ToggleGoalStatus(c.Request.Context(), c.Param("id"), req.CurrentStatus); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Goal status updated", nil)
}

// DeleteGoal godoc
// @Summary      Delete goal
// @Tags         planner
// @Produce      json
// @Param        id  path      string  true  "Goal ID"
// @Success      200 {object}  response.Response
// @Router       /planner/goals/{id} [delete]
// @Security     BearerAuth
func (h *PlannerHandler) DeleteGoal(c *gin.Context) {
	if err := h.plannerUC.DeleteGoal(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Goal deleted", nil)
}

type SaveJournalRequest struct {
	Date    string `json:"date" binding:"required"`
	Content string `json:"content"`
}

// SaveJournal godoc
// @Summary      Save journal entry
// @Description  Upserts the journal for one date (one entry per user per day)
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        journal  body      SaveJournalRequest  true  "Journal"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /planner/journal [put]
// @Security     BearerAuth
func (h *PlannerHandler) SaveJournal(c *gin.Context) {
	var req SaveJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.plannerUC.SaveJournal(c.Request.Context(), req.Date, req.Content); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Journal saved", nil)
}

// UploadAttachment godoc
// @Summary      Upload attachment
// @Description  Attach a file to one planner date. Images are compressed before storage.
// @Tags         planner
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true  "File to upload"
// @Param        date  formData  string  true  "Date (YYYY-MM-DD)"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      413   {object}  response.Response
// @Router       /planner/attachments [post]
// @Security     BearerAuth
func (h *PlannerHandler) UploadAttachment(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file provided"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	up := &domain.AttachmentUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Data:        data,
	}

	if err := h.plannerUC.UploadAttachment(c.Request.Context(), c.PostForm("date"), up); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Attachment uploaded", nil)
}

// DeleteAttachment godoc
// @Summary      Delete attachment
// @Description  Removes the database row, then the stored object (best effort)
// @Tags         planner
// @Produce      json
// @Param        id         path      string  true   "Attachment ID"
// @Param        file_path  query     string  false  "Storage key of the object"
// @Success      200        {object}  response.Response
// @Router       /planner/attachments/{id} [delete]
// @Security     BearerAuth
func (h *PlannerHandler) DeleteAttachment(c *gin.Context) {
	if err := h.plannerUC.DeleteAttachment(c.Request.Context(), c.Param("id"), c.Query("file_path")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Attachment deleted", nil)
}

// AttachmentURL godoc
// @Summary      Attachment download URL
// @Description  Returns a short-lived signed URL for the stored object
// @Tags         planner
// @Produce      json
// @Param        id   path      string  true  "Attachment ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /planner/attachments/{id}/url [get]
// @Security     BearerAuth
func (h *PlannerHandler) AttachmentURL(c *gin.Context) {
	url, err := h.plannerUC.AttachmentSignedURL(c.Request.Context(), c.Param("id"), signedURLTTL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Signed URL", gin.H{"url": url})
}
