package models

import "time"

// Notification targets a single member (UserID, weak reference).
// Notifications carry no UpdatedAt and are stored most recent first.
type Notification struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user_id"`
	Type      NotificationType     `json:"type"`
	Priority  NotificationPriority `json:"priority"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	IsRead    bool                 `json:"is_read"`
	ActionURL string               `json:"action_url"`
	CreatedAt time.Time            `json:"created_at"`
}
