package services

import (
	"strings"
	"time"

	"github.com/Moetaz101/project-pal/internal/models"
	"github.com/Moetaz101/project-pal/internal/store"
	"github.com/google/uuid"
)

type MemberService struct {
	store *store.Store
}

func NewMemberService(st *store.Store) *MemberService {
	return &MemberService{store: st}
}

type MemberListRequest struct {
	Search string `form:"search"`
	Role   string `form:"role" binding:"omitempty,oneof=all admin project-manager developer designer tester"`
}

type CreateMemberRequest struct {
	Name   string              `json:"name" binding:"required"`
	Email  string              `json:"email" binding:"required,email"`
	Role   models.MemberRole   `json:"role" binding:"omitempty,oneof=admin project-manager developer designer tester"`
	Skills []string            `json:"skills"`
	Status models.MemberStatus `json:"status" binding:"omitempty,oneof=available busy away"`
}

type UpdateMemberRequest struct {
	Name   *string              `json:"name"`
	Email  *string              `json:"email"`
	Role   *models.MemberRole   `json:"role" binding:"omitempty,oneof=admin project-manager developer designer tester"`
	Skills *[]string            `json:"skills"`
	Status *models.MemberStatus `json:"status" binding:"omitempty,oneof=available busy away"`
}

// MemberStats counts a member's associations across the other collections.
// A member with no associations gets zeros, never an error.
type MemberStats struct {
	Projects       int `json:"projects"`
	Tasks          int `json:"tasks"`
	CompletedTasks int `json:"completed_tasks"`
}

// List returns members whose name, email or any skill matches the search
// text, narrowed by the role filter.
func (s *MemberService) List(req *MemberListRequest) []models.Member {
	out := make([]models.Member, 0)
	for _, m := range s.store.Members() {
		fields := append([]string{m.Name, m.Email}, m.Skills...)
		if !matchText(req.Search, fields...) {
			continue
		}
		if !passFilter(req.Role) && string(m.Role) != req.Role {
			continue
		}
		out = append(out, m)
	}
	return out
}

// GetByID returns a member by id.
func (s *MemberService) GetByID(id string) (models.Member, bool) {
	return s.store.Member(id)
}

// Create validates the request and inserts a new member. Email uniqueness is
// not checked, matching the original behavior. The avatar initials are
// derived from the name.
func (s *MemberService) Create(req *CreateMemberRequest) (models.Member, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Member{}, requiredField("name")
	}
	if strings.TrimSpace(req.Email) == "" {
		return models.Member{}, requiredField("email")
	}
	role := req.Role
	if role == "" {
		role = models.RoleDeveloper
	}
	status := req.Status
	if status == "" {
		status = models.MemberAvailable
	}

	m := models.Member{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.TrimSpace(req.Email),
		Role:      role,
		Avatar:    initials(name),
		Skills:    req.Skills,
		Status:    status,
		CreatedAt: time.Now(),
	}

	if err := s.store.AddMember(m); err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// Update applies the sparse request to the matching member. A name change
// refreshes the avatar initials.
func (s *MemberService) Update(id string, req *UpdateMemberRequest) (models.Member, bool, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return models.Member{}, false, requiredField("name")
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) == "" {
		return models.Member{}, false, requiredField("email")
	}
	patch := store.MemberPatch{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Skills: req.Skills,
		Status: req.Status,
	}
	if req.Name != nil {
		av := initials(strings.TrimSpace(*req.Name))
		patch.Avatar = &av
	}
	m, ok := s.store.UpdateMember(id, patch)
	return m, ok, nil
}

// Delete removes the member. Every reference to the member elsewhere is left
// in place and resolves to absent from now on.
func (s *MemberService) Delete(id string) bool {
	return s.store.DeleteMember(id)
}

// Stats counts the member's projects, assigned tasks and completed tasks.
func (s *MemberService) Stats(memberID string) MemberStats {
	var stats MemberStats
	for _, p := range s.store.Projects() {
		if p.HasMember(memberID) {
			stats.Projects++
		}
	}
	for _, t := range s.store.Tasks() {
		if t.AssignedTo != memberID {
			continue
		}
		stats.Tasks++
		if t.Status == models.TaskDone {
			stats.CompletedTasks++
		}
	}
	return stats
}

// initials builds the avatar display initial from the first letter of up to
// two name words.
func initials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
