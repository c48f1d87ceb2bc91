package store

import (
	"time"

	"github.com/Moetaz101/project-pal/internal/models"
)

// ProjectPatch lists the project fields an update may touch. Nil fields are
// left unchanged.
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *models.ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
	MemberIDs   *[]string
	Progress    *int
}

// AddProject appends a project. The id must be unique within the collection.
func (s *Store) AddProject(p models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			return ErrDuplicateID
		}
	}
	s.projects = append(s.projects, cloneProject(p))
	return nil
}

// UpdateProject merges the patch into the matching project and refreshes
// UpdatedAt. Unknown id is a no-op and returns false.
func (s *Store) UpdateProject(id string, patch ProjectPatch) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.StartDate != nil {
			p.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			p.EndDate = *patch.EndDate
		}
		if patch.MemberIDs != nil {
			p.MemberIDs = cloneStrings(*patch.MemberIDs)
		}
		if patch.Progress != nil {
			p.Progress = *patch.Progress
		}
		p.UpdatedAt = time.Now()
		return cloneProject(*p), true
	}
	return models.Project{}, false
}

// DeleteProject removes the matching project. Tasks keep their ProjectID even
// when it now dangles; deletes never cascade.
func (s *Store) DeleteProject(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return true
		}
	}
	return false
}

// Project looks up a project by id.
func (s *Store) Project(id string) (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			return cloneProject(s.projects[i]), true
		}
	}
	return models.Project{}, false
}

// Projects returns a copy of the project collection in insertion order.
func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectsLocked()
}

func (s *Store) projectsLocked() []models.Project {
	out := make([]models.Project, 0, len(s.projects))
	for i := range s.projects {
		out = append(out, cloneProject(s.projects[i]))
	}
	return out
}
