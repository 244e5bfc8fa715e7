package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/middleware"
	"github.com/yukikurage/freelance-marketplace-api/internal/query"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	resp, err := h.dashboardService.Overview(userID)
	if err != nil {
		respondDashboardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Jobs is the dashboard job table. current_sort/current_order carry the
// table's sort state; sort selects a column, flipping the direction when it
// is already the active one. Without any state the table is newest first.
func (h *DashboardHandler) Jobs(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	sorter := query.Sorter{
		Key:   c.DefaultQuery("current_sort", services.JobSortDate),
		Order: query.ParseOrder(c.Query("current_order"), query.Descending),
	}
	if key := c.Query("sort"); key != "" {
		sorter = sorter.Select(key)
	}

	resp, err := h.dashboardService.Jobs(userID, c.Query("tab"), sorter)
	if err != nil {
		respondDashboardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func respondDashboardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnknownJobTab), errors.Is(err, services.ErrUnknownSortBy):
		apierrors.BadRequest(c, err.Error())
	default:
		respondCommonError(c, err)
	}
}
