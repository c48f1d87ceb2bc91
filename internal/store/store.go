// Package store owns the in-memory collections and is the only component
// allowed to mutate them. State lives for the lifetime of the process and is
// seeded once at startup; there is no persistence.
package store

import (
	"errors"
	"sync"

	"github.com/Moetaz101/project-pal/internal/models"
)

// ErrDuplicateID is returned by Add* when a record with the same id already
// exists in the collection. Ids are caller-supplied, so a collision is a bug
// on the caller's side and is rejected rather than silently replaced.
var ErrDuplicateID = errors.New("duplicate id")

// Snapshot is the initial state a Store is constructed with, and the shape
// returned by Dump. Collections keep their slice order: projects, tasks,
// members and comments are oldest first; notifications and activities are
// most recent first.
type Snapshot struct {
	Projects      []models.Project
	Tasks         []models.Task
	Members       []models.Member
	Comments      []models.Comment
	Notifications []models.Notification
	Activities    []models.Activity
}

// Store holds the six collections behind a single RWMutex. The original
// design ran in one execution context; serving it over HTTP introduces
// concurrent readers and writers, so every operation takes the lock.
type Store struct {
	mu            sync.RWMutex
	projects      []models.Project
	tasks         []models.Task
	members       []models.Member
	comments      []models.Comment
	notifications []models.Notification
	activities    []models.Activity
}

// New builds a store from an initial snapshot. The snapshot is deep-copied so
// the caller cannot alias store state afterwards.
func New(snap Snapshot) *Store {
	s := &Store{
		projects:      make([]models.Project, 0, len(snap.Projects)),
		tasks:         make([]models.Task, 0, len(snap.Tasks)),
		members:       make([]models.Member, 0, len(snap.Members)),
		comments:      make([]models.Comment, 0, len(snap.Comments)),
		notifications: make([]models.Notification, 0, len(snap.Notifications)),
		activities:    make([]models.Activity, 0, len(snap.Activities)),
	}
	for _, p := range snap.Projects {
		s.projects = append(s.projects, cloneProject(p))
	}
	s.tasks = append(s.tasks, snap.Tasks...)
	for _, m := range snap.Members {
		s.members = append(s.members, cloneMember(m))
	}
	for _, c := range snap.Comments {
		s.comments = append(s.comments, cloneComment(c))
	}
	s.notifications = append(s.notifications, snap.Notifications...)
	s.activities = append(s.activities, snap.Activities...)
	return s
}

// Dump returns a deep copy of the full store contents.
func (s *Store) Dump() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Projects:      s.projectsLocked(),
		Tasks:         s.tasksLocked(),
		Members:       s.membersLocked(),
		Comments:      s.commentsLocked(),
		Notifications: s.notificationsLocked(),
		Activities:    s.activitiesLocked(),
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneProject(p models.Project) models.Project {
	p.MemberIDs = cloneStrings(p.MemberIDs)
	return p
}

func cloneMember(m models.Member) models.Member {
	m.Skills = cloneStrings(m.Skills)
	return m
}

func cloneComment(c models.Comment) models.Comment {
	c.Mentions = cloneStrings(c.Mentions)
	return c
}
