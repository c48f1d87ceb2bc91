package services

import (
	"time"

	"github.com/Moetaz101/project-pal/internal/models"
	"github.com/Moetaz101/project-pal/internal/store"
	"github.com/google/uuid"
)

// recentActivityLimit caps the dashboard activity feed.
const recentActivityLimit = 5

type ActivityService struct {
	store *store.Store
}

func NewActivityService(st *store.Store) *ActivityService {
	return &ActivityService{store: st}
}

// ActivityView is an activity entry joined with its actor. Actor is nil when
// the member has since been deleted.
type ActivityView struct {
	models.Activity
	Actor *models.Member `json:"actor,omitempty"`
}

// Record appends an entry to the audit trail. Recording never fails from the
// caller's perspective; the trail is best-effort bookkeeping.
func (s *ActivityService) Record(actorID, action string, entityType models.ActivityEntityType, entityID string) {
	a := models.Activity{
		ID:         uuid.NewString(),
		UserID:     actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Timestamp:  time.Now(),
	}
	_ = s.store.AddActivity(a)
}

// Recent returns the five most recent activity entries joined with their
// actors.
func (s *ActivityService) Recent() []ActivityView {
	return s.recent(recentActivityLimit)
}

// All returns the full audit trail, most recent first.
func (s *ActivityService) All() []ActivityView {
	return s.recent(0)
}

func (s *ActivityService) recent(limit int) []ActivityView {
	activities := s.store.Activities()
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	out := make([]ActivityView, 0, len(activities))
	for _, a := range activities {
		view := ActivityView{Activity: a}
		if m, ok := s.store.Member(a.UserID); ok {
			view.Actor = &m
		}
		out = append(out, view)
	}
	return out
}
