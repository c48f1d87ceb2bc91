package handlers

import (
	"github.com/Moetaz101/project-pal/internal/services"
	"github.com/Moetaz101/project-pal/pkg/response"
	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activities *services.ActivityService
}

func NewActivityHandler(activities *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// List returns the audit trail, most recent first. ?recent=true narrows it
// to the five entries the dashboard shows.
// GET /api/activities
func (h *ActivityHandler) List(c *gin.Context) {
	if c.Query("recent") == "true" {
		response.Success(c, h.activities.Recent())
		return
	}
	response.Success(c, h.activities.All())
}
