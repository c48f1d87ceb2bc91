package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Moetaz101/project-pal/internal/models"
	"github.com/Moetaz101/project-pal/internal/store"
	"github.com/google/uuid"
)

type NotificationService struct {
	store *store.Store
}

func NewNotificationService(st *store.Store) *NotificationService {
	return &NotificationService{store: st}
}

type NotificationListRequest struct {
	Filter string `form:"filter" binding:"omitempty,oneof=all unread"`
}

type CreateNotificationRequest struct {
	UserID    string                      `json:"user_id" binding:"required"`
	Type      models.NotificationType     `json:"type" binding:"omitempty,oneof=task comment project system"`
	Priority  models.NotificationPriority `json:"priority" binding:"omitempty,oneof=high normal low"`
	Title     string                      `json:"title" binding:"required"`
	Message   string                      `json:"message"`
	ActionURL string                      `json:"action_url"`
}

// ListForUser returns the member's notifications, most recent first,
// optionally narrowed to unread ones.
func (s *NotificationService) ListForUser(userID string, req *NotificationListRequest) []models.Notification {
	out := make([]models.Notification, 0)
	for _, n := range s.store.Notifications() {
		if n.UserID != userID {
			continue
		}
		if req.Filter == "unread" && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	return out
}

// UnreadCount counts the member's unread notifications.
func (s *NotificationService) UnreadCount(userID string) int {
	count := 0
	for _, n := range s.store.Notifications() {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count
}

// Create validates the request and prepends a new notification.
func (s *NotificationService) Create(req *CreateNotificationRequest) (models.Notification, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Notification{}, requiredField("title")
	}
	if strings.TrimSpace(req.UserID) == "" {
		return models.Notification{}, requiredField("user_id")
	}
	typ := req.Type
	if typ == "" {
		typ = models.NotifySystem
	}
	priority := req.Priority
	if priority == "" {
		priority = models.NotifyNormal
	}

	n := models.Notification{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Type:      typ,
		Priority:  priority,
		Title:     strings.TrimSpace(req.Title),
		Message:   req.Message,
		ActionURL: req.ActionURL,
		CreatedAt: time.Now(),
	}
	if err := s.store.AddNotification(n); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

// MarkRead flags one notification as read. Unknown id is a no-op.
func (s *NotificationService) MarkRead(id string) bool {
	return s.store.MarkNotificationRead(id)
}

// MarkAllReadFor flags every notification addressed to the member as read
// and returns how many were affected. Scoping to one member is a deliberate
// narrowing of the original collection-wide behavior.
func (s *NotificationService) MarkAllReadFor(userID string) int {
	return s.store.MarkAllNotificationsReadFor(userID)
}

// Delete removes the notification. Unknown id is a no-op.
func (s *NotificationService) Delete(id string) bool {
	return s.store.DeleteNotification(id)
}

// NotifyMention sends a comment-mention notification to each mentioned
// member. Mentions of unknown members are skipped silently.
func (s *NotificationService) NotifyMention(authorID, taskID string, mentions []string) {
	author, _ := s.store.Member(authorID)
	authorName := author.Name
	if authorName == "" {
		authorName = "Someone"
	}
	taskTitle := "a task"
	if t, ok := s.store.Task(taskID); ok {
		taskTitle = fmt.Sprintf("%q", t.Title)
	}

	for _, memberID := range mentions {
		if _, ok := s.store.Member(memberID); !ok {
			continue
		}
		n := models.Notification{
			ID:        uuid.NewString(),
			UserID:    memberID,
			Type:      models.NotifyComment,
			Priority:  models.NotifyNormal,
			Title:     "You were mentioned",
			Message:   fmt.Sprintf("%s mentioned you on %s", authorName, taskTitle),
			ActionURL: "/tasks",
			CreatedAt: time.Now(),
		}
		_ = s.store.AddNotification(n)
	}
}

// NotifyTaskDueSoon sends a high-priority reminder for the task to its
// assignee.
func (s *NotificationService) NotifyTaskDueSoon(t models.Task) {
	n := models.Notification{
		ID:        uuid.NewString(),
		UserID:    t.AssignedTo,
		Type:      models.NotifyTask,
		Priority:  models.NotifyHigh,
		Title:     "Task due soon",
		Message:   fmt.Sprintf("%q is due %s", t.Title, t.DueDate.Format("Jan 2 15:04")),
		ActionURL: "/tasks",
		CreatedAt: time.Now(),
	}
	_ = s.store.AddNotification(n)
}
