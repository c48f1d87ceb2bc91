package handlers

import (
	"github.com/Moetaz101/project-pal/internal/middleware"
	"github.com/Moetaz101/project-pal/internal/services"
	"github.com/Moetaz101/project-pal/pkg/response"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List returns tasks filtered by search text, status, priority, project and
// assignee.
// GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	var req services.TaskListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, h.tasks.List(&req))
}

// GetByID returns a task joined with its project and assignee. Dangling
// references come back absent, not as errors.
// GET /api/tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	task, ok := h.tasks.GetByID(c.Param("id"))
	if !ok {
		response.NotFound(c, "task not found")
		return
	}
	response.Success(c, h.tasks.Resolve(task))
}

// Create creates a new task.
// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req services.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.tasks.Create(&req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Set(middleware.AuditEntityID, task.ID)
	c.Set(middleware.AuditEntityName, task.Title)
	response.Created(c, task)
}

// Update applies a sparse update to a task.
// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req services.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, ok, err := h.tasks.Update(c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		response.NotFound(c, "task not found")
		return
	}

	c.Set(middleware.AuditEntityName, task.Title)
	response.Success(c, task)
}

// Delete removes a task.
// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if !h.tasks.Delete(c.Param("id")) {
		response.NotFound(c, "task not found")
		return
	}
	response.Success(c, gin.H{"message": "task deleted successfully"})
}
