package handlers

import (
	"github.com/Moetaz101/project-pal/internal/middleware"
	"github.com/Moetaz101/project-pal/internal/services"
	"github.com/Moetaz101/project-pal/pkg/response"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetStats returns the dashboard overview for the acting member.
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	response.Success(c, h.dashboard.Overview(middleware.GetMemberID(c)))
}
