package v1

import (
	"net/http"

	"go-pulse-backend/internal/delivery/http/response"
	"go-pulse-backend/internal/domain"
	"go-pulse-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RoadmapHandler struct {
	roadmapUC domain.RoadmapUsecase
}

func NewRoadmapHandler(rg *gin.RouterGroup, roadmapUC domain.RoadmapUsecase) {
	handler := &RoadmapHandler{roadmapUC: roadmapUC}

	roadmap := rg.Group("/roadmap")
	{
		roadmap.GET("", handler.GetRoadmap)
		roadmap.PUT("/weeks/:id/title", handler.UpdateWeekTitle)
	}
}

// GetRoadmap godoc
// @Summary      Program roadmap
// @Description  All program weeks with per-weekday goal summaries for the current intern
// @Tags         roadmap
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.WeekWithDays}
// @Failure      401  {object}  response.Response
// @Router       /roadmap [get]
// @Security     BearerAuth
func (h *RoadmapHandler) GetRoadmap(c *gin.Context) {
	weeks, err := h.roadmapUC.GetRoadmapData(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Roadmap", weeks)
}

type UpdateWeekTitleRequest struct {
	Title string `json:"title"`
}

// UpdateWeekTitle godoc
// @Summary      Rename a week
// @Description  Sets the shared week title; blank titles fall back to "Untitled"
// @Tags         roadmap
// @Accept       json
// @Produce      json
// @Param        id     path      string                  true  "Week ID"
// @Param        title  body      UpdateWeekTitleRequest  true  "New title"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /roadmap/weeks/{id}/title [put]
// @Security     BearerAuth
func (h *RoadmapHandler) UpdateWeekTitle(c *gin.Context) {
	var req UpdateWeekTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.roadmapUC.UpdateWeekTitle(c.Request.Context(), c.Param("id"), req.Title); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Week title updated", nil)
}
