package store

import "github.com/Moetaz101/project-pal/internal/models"

// MemberPatch lists the member fields an update may touch. Members carry no
// UpdatedAt, so updates leave timestamps alone.
type MemberPatch struct {
	Name   *string
	Email  *string
	Role   *models.MemberRole
	Avatar *string
	Skills *[]string
	Status *models.MemberStatus
}

// AddMember appends a member. Email uniqueness is deliberately not enforced.
func (s *Store) AddMember(m models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == m.ID {
			return ErrDuplicateID
		}
	}
	s.members = append(s.members, cloneMember(m))
	return nil
}

// UpdateMember merges the patch into the matching member. Unknown id is a
// no-op and returns false.
func (s *Store) UpdateMember(id string, patch MemberPatch) (models.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID != id {
			continue
		}
		m := &s.members[i]
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Email != nil {
			m.Email = *patch.Email
		}
		if patch.Role != nil {
			m.Role = *patch.Role
		}
		if patch.Avatar != nil {
			m.Avatar = *patch.Avatar
		}
		if patch.Skills != nil {
			m.Skills = cloneStrings(*patch.Skills)
		}
		if patch.Status != nil {
			m.Status = *patch.Status
		}
		return cloneMember(*m), true
	}
	return models.Member{}, false
}

// DeleteMember removes the matching member. Tasks, comments, projects and
// notifications referencing the member keep their ids; those references
// resolve to absent from now on.
func (s *Store) DeleteMember(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return true
		}
	}
	return false
}

// Member looks up a member by id.
func (s *Store) Member(id string) (models.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.members {
		if s.members[i].ID == id {
			return cloneMember(s.members[i]), true
		}
	}
	return models.Member{}, false
}

// Members returns a copy of the member collection in insertion order.
func (s *Store) Members() []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.membersLocked()
}

func (s *Store) membersLocked() []models.Member {
	out := make([]models.Member, 0, len(s.members))
	for i := range s.members {
		out = append(out, cloneMember(s.members[i]))
	}
	return out
}
