package store

import "github.com/Moetaz101/project-pal/internal/models"

// AddActivity inserts the entry at the head of the audit trail so the most
// recent action is always first. Activities are never updated or deleted.
func (s *Store) AddActivity(a models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.activities {
		if s.activities[i].ID == a.ID {
			return ErrDuplicateID
		}
	}
	s.activities = append([]models.Activity{a}, s.activities...)
	return nil
}

// Activities returns a copy of the audit trail, most recent first.
func (s *Store) Activities() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activitiesLocked()
}

func (s *Store) activitiesLocked() []models.Activity {
	out := make([]models.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}
