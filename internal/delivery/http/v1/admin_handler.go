package v1

import (
	"net/http"

	"go-pulse-backend/internal/delivery/http/response"
	"go-pulse-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

// NewAdminHandler registers the admin routes. The group is expected to carry
// the admin allow-list middleware already.
func NewAdminHandler(rg *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	rg.GET("/interns", handler.ListInterns)
}

// ListInterns godoc
// @Summary      Intern overview
// @Description  All intern profiles with goal set/completed counts, admins excluded
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.InternStats}
// @Failure      403  {object}  response.Response
// @Router       /admin/interns [get]
// @Security     BearerAuth
func (h *AdminHandler) ListInterns(c *gin.Context) {
	interns, err := h.adminUC.GetInternsWithGoalStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Intern overview", interns)
}
