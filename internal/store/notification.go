package store

import "github.com/Moetaz101/project-pal/internal/models"

// AddNotification inserts the notification at the head of the collection so
// the most recent one is always first.
func (s *Store) AddNotification(n models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == n.ID {
			return ErrDuplicateID
		}
	}
	s.notifications = append([]models.Notification{n}, s.notifications...)
	return nil
}

// MarkNotificationRead sets IsRead on the matching notification. Unknown id
// is a no-op and returns false.
func (s *Store) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			return true
		}
	}
	return false
}

// MarkAllNotificationsRead sets IsRead on every notification in the
// collection, regardless of recipient. Callers that want a single user's
// notifications affected use MarkAllNotificationsReadFor.
func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].IsRead = true
	}
}

// MarkAllNotificationsReadFor sets IsRead on every notification addressed to
// the given member and returns how many were flipped.
func (s *Store) MarkAllNotificationsReadFor(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.notifications {
		if s.notifications[i].UserID == userID && !s.notifications[i].IsRead {
			s.notifications[i].IsRead = true
			n++
		}
	}
	return n
}

// DeleteNotification removes the matching notification.
func (s *Store) DeleteNotification(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return true
		}
	}
	return false
}

// Notification looks up a notification by id.
func (s *Store) Notification(id string) (models.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			return s.notifications[i], true
		}
	}
	return models.Notification{}, false
}

// Notifications returns a copy of the collection, most recent first.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notificationsLocked()
}

func (s *Store) notificationsLocked() []models.Notification {
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}
