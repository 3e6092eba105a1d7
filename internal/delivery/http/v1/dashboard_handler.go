package v1

import (
	"net/http"

	"go-pulse-backend/internal/delivery/http/response"
	"go-pulse-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(rg *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", handler.GetStats)
		dashboard.GET("/goals/today", handler.GetTodayGoals)
	}
}

// GetStats godoc
// @Summary      Dashboard statistics
// @Description  Program progress, backlog count and profile summary for the current intern
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.DashboardStats}
// @Failure      401  {object}  response.Response
// @Router       /dashboard/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardUC.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard stats", stats)
}

// GetTodayGoals godoc
// @Summary      Today's goals
// @Description  Goals for today ordered pending, in progress, completed
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Goal}
// @Failure      401  {object}  response.Response
// @Router       /dashboard/goals/today [get]
// @Security     BearerAuth
func (h *DashboardHandler) GetTodayGoals(c *gin.Context) {
	goals, err := h.dashboardUC.GetTodayGoals(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Today's goals", goals)
}
