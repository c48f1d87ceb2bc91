package services

import (
	"strings"
	"time"

	"github.com/Moetaz101/project-pal/internal/models"
	"github.com/Moetaz101/project-pal/internal/store"
	"github.com/google/uuid"
)

type ProjectService struct {
	store *store.Store
}

func NewProjectService(st *store.Store) *ProjectService {
	return &ProjectService{store: st}
}

type ProjectListRequest struct {
	Search string `form:"search"`
	Status string `form:"status" binding:"omitempty,oneof=all planning active on-hold completed"`
}

type CreateProjectRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status" binding:"omitempty,oneof=planning active on-hold completed"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     time.Time            `json:"end_date"`
	MemberIDs   []string             `json:"member_ids"`
	Progress    int                  `json:"progress" binding:"min=0,max=100"`
}

type UpdateProjectRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Status      *models.ProjectStatus `json:"status" binding:"omitempty,oneof=planning active on-hold completed"`
	StartDate   *time.Time            `json:"start_date"`
	EndDate     *time.Time            `json:"end_date"`
	MemberIDs   *[]string             `json:"member_ids"`
	Progress    *int                  `json:"progress" binding:"omitempty,min=0,max=100"`
}

// List returns projects matching the search text and status filter.
func (s *ProjectService) List(req *ProjectListRequest) []models.Project {
	out := make([]models.Project, 0)
	for _, p := range s.store.Projects() {
		if !matchText(req.Search, p.Name, p.Description) {
			continue
		}
		if !passFilter(req.Status) && string(p.Status) != req.Status {
			continue
		}
		out = append(out, p)
	}
	return out
}

// GetByID returns a project by id.
func (s *ProjectService) GetByID(id string) (models.Project, bool) {
	return s.store.Project(id)
}

// Create validates the request and inserts a new project.
func (s *ProjectService) Create(req *CreateProjectRequest) (models.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.Project{}, requiredField("name")
	}
	status := req.Status
	if status == "" {
		status = models.ProjectPlanning
	}

	now := time.Now()
	p := models.Project{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Status:      status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MemberIDs:   req.MemberIDs,
		Progress:    req.Progress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.AddProject(p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Update applies the sparse request to the matching project. Unknown id
// returns false without error.
func (s *ProjectService) Update(id string, req *UpdateProjectRequest) (models.Project, bool, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return models.Project{}, false, requiredField("name")
	}
	patch := store.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MemberIDs:   req.MemberIDs,
		Progress:    req.Progress,
	}
	p, ok := s.store.UpdateProject(id, patch)
	return p, ok, nil
}

// Delete removes the project. Tasks keep their project reference; it simply
// resolves to absent from now on.
func (s *ProjectService) Delete(id string) bool {
	return s.store.DeleteProject(id)
}
