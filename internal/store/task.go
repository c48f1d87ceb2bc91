package store

import (
	"time"

	"github.com/Moetaz101/project-pal/internal/models"
)

// TaskPatch lists the task fields an update may touch.
type TaskPatch struct {
	ProjectID   *string
	Title       *string
	Description *string
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
	AssignedTo  *string
	DueDate     *time.Time
}

// AddTask appends a task. ProjectID and AssignedTo are stored as given and
// never validated against the project or member collections.
func (s *Store) AddTask(t models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			return ErrDuplicateID
		}
	}
	s.tasks = append(s.tasks, t)
	return nil
}

// UpdateTask merges the patch into the matching task and refreshes UpdatedAt.
// Unknown id is a no-op and returns false.
func (s *Store) UpdateTask(id string, patch TaskPatch) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if patch.ProjectID != nil {
			t.ProjectID = *patch.ProjectID
		}
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.AssignedTo != nil {
			t.AssignedTo = *patch.AssignedTo
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}
		t.UpdatedAt = time.Now()
		return *t, true
	}
	return models.Task{}, false
}

// DeleteTask removes the matching task; comments referencing it keep their
// TaskID.
func (s *Store) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Task looks up a task by id.
func (s *Store) Task(id string) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], true
		}
	}
	return models.Task{}, false
}

// Tasks returns a copy of the task collection in insertion order.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasksLocked()
}

func (s *Store) tasksLocked() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}
