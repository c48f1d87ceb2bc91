package services

import (
	"sort"
	"strings"
	"time"

	"github.com/Moetaz101/project-pal/internal/models"
	"github.com/Moetaz101/project-pal/internal/store"
	"github.com/google/uuid"
)

// upcomingLimit caps the dashboard "my tasks" list.
const upcomingLimit = 5

type TaskService struct {
	store *store.Store
}

func NewTaskService(st *store.Store) *TaskService {
	return &TaskService{store: st}
}

type TaskListRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status" binding:"omitempty,oneof=all todo in-progress in-review done"`
	Priority   string `form:"priority" binding:"omitempty,oneof=all low medium high critical"`
	ProjectID  string `form:"project_id"`
	AssignedTo string `form:"assigned_to"`
}

type CreateTaskRequest struct {
	ProjectID   string              `json:"project_id"`
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status" binding:"omitempty,oneof=todo in-progress in-review done"`
	Priority    models.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	AssignedTo  string              `json:"assigned_to"`
	DueDate     time.Time           `json:"due_date"`
}

type UpdateTaskRequest struct {
	ProjectID   *string              `json:"project_id"`
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *models.TaskStatus   `json:"status" binding:"omitempty,oneof=todo in-progress in-review done"`
	Priority    *models.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	AssignedTo  *string              `json:"assigned_to"`
	DueDate     *time.Time           `json:"due_date"`
}

// TaskView is a task joined with its resolved references. Project and
// Assignee are nil when the reference dangles.
type TaskView struct {
	models.Task
	Project  *models.Project `json:"project,omitempty"`
	Assignee *models.Member  `json:"assignee,omitempty"`
}

// List returns tasks matching every supplied filter. Search, status and
// priority compose with AND, so application order does not matter.
func (s *TaskService) List(req *TaskListRequest) []models.Task {
	out := make([]models.Task, 0)
	for _, t := range s.store.Tasks() {
		if !matchText(req.Search, t.Title, t.Description) {
			continue
		}
		if !passFilter(req.Status) && string(t.Status) != req.Status {
			continue
		}
		if !passFilter(req.Priority) && string(t.Priority) != req.Priority {
			continue
		}
		if req.ProjectID != "" && t.ProjectID != req.ProjectID {
			continue
		}
		if req.AssignedTo != "" && t.AssignedTo != req.AssignedTo {
			continue
		}
		out = append(out, t)
	}
	return out
}

// GetByID returns a task by id.
func (s *TaskService) GetByID(id string) (models.Task, bool) {
	return s.store.Task(id)
}

// Resolve joins a task with its project and assignee. Dangling references
// stay nil; they are never an error.
func (s *TaskService) Resolve(t models.Task) TaskView {
	view := TaskView{Task: t}
	if p, ok := s.store.Project(t.ProjectID); ok {
		view.Project = &p
	}
	if m, ok := s.store.Member(t.AssignedTo); ok {
		view.Assignee = &m
	}
	return view
}

// Create validates the request and inserts a new task. ProjectID and
// AssignedTo are taken as given; referencing an unknown project or member is
// allowed.
func (s *TaskService) Create(req *CreateTaskRequest) (models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Task{}, requiredField("title")
	}
	status := req.Status
	if status == "" {
		status = models.TaskTodo
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := time.Now()
	t := models.Task{
		ID:          uuid.NewString(),
		ProjectID:   req.ProjectID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.AddTask(t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// Update applies the sparse request to the matching task.
func (s *TaskService) Update(id string, req *UpdateTaskRequest) (models.Task, bool, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return models.Task{}, false, requiredField("title")
	}
	patch := store.TaskPatch{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
	}
	t, ok := s.store.UpdateTask(id, patch)
	return t, ok, nil
}

// Delete removes the task. Comments referencing it keep their task id.
func (s *TaskService) Delete(id string) bool {
	return s.store.DeleteTask(id)
}

// Upcoming returns the member's open tasks due strictly after now, soonest
// first, capped at five. The sort is stable so tasks sharing a due date keep
// collection order.
func (s *TaskService) Upcoming(userID string, now time.Time) []models.Task {
	out := make([]models.Task, 0)
	for _, t := range s.store.Tasks() {
		if t.AssignedTo != userID || t.Status == models.TaskDone {
			continue
		}
		if !t.DueDate.After(now) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	if len(out) > upcomingLimit {
		out = out[:upcomingLimit]
	}
	return out
}

// DueWithin returns open tasks whose due date falls inside (now, now+window].
// Used by the reminder sweep.
func (s *TaskService) DueWithin(now time.Time, window time.Duration) []models.Task {
	out := make([]models.Task, 0)
	cutoff := now.Add(window)
	for _, t := range s.store.Tasks() {
		if t.Status == models.TaskDone {
			continue
		}
		if t.DueDate.After(now) && !t.DueDate.After(cutoff) {
			out = append(out, t)
		}
	}
	return out
}
