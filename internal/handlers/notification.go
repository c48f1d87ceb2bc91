package handlers

import (
	"github.com/Moetaz101/project-pal/internal/middleware"
	"github.com/Moetaz101/project-pal/internal/services"
	"github.com/Moetaz101/project-pal/pkg/response"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List returns the acting member's notifications, most recent first, with
// the unread count.
// GET /api/notifications?filter=unread
func (h *NotificationHandler) List(c *gin.Context) {
	var req services.NotificationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := middleware.GetMemberID(c)
	response.Success(c, gin.H{
		"items":        h.notifications.ListForUser(userID, &req),
		"unread_count": h.notifications.UnreadCount(userID),
	})
}

// Create inserts a notification for any member.
// POST /api/notifications
func (h *NotificationHandler) Create(c *gin.Context) {
	var req services.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	n, err := h.notifications.Create(&req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, n)
}

// MarkRead flags one notification as read.
// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if !h.notifications.MarkRead(c.Param("id")) {
		response.NotFound(c, "notification not found")
		return
	}
	response.Success(c, gin.H{"message": "notification marked as read"})
}

// MarkAllRead flags every notification addressed to the acting member as
// read.
// POST /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	count := h.notifications.MarkAllReadFor(middleware.GetMemberID(c))
	response.Success(c, gin.H{"marked_read": count})
}

// Delete removes a notification.
// DELETE /api/notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	if !h.notifications.Delete(c.Param("id")) {
		response.NotFound(c, "notification not found")
		return
	}
	response.Success(c, gin.H{"message": "notification deleted successfully"})
}
