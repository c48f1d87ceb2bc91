package handlers

import (
	"github.com/Moetaz101/project-pal/internal/middleware"
	"github.com/Moetaz101/project-pal/internal/services"
	"github.com/Moetaz101/project-pal/pkg/response"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List returns projects filtered by search text and status.
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	var req services.ProjectListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, h.projects.List(&req))
}

// GetByID returns a project by id.
// GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	project, ok := h.projects.GetByID(c.Param("id"))
	if !ok {
		response.NotFound(c, "project not found")
		return
	}
	response.Success(c, project)
}

// Create creates a new project.
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projects.Create(&req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Set(middleware.AuditEntityID, project.ID)
	c.Set(middleware.AuditEntityName, project.Name)
	response.Created(c, project)
}

// Update applies a sparse update to a project.
// PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req services.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, ok, err := h.projects.Update(c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		response.NotFound(c, "project not found")
		return
	}

	c.Set(middleware.AuditEntityName, project.Name)
	response.Success(c, project)
}

// Delete removes a project. Its tasks are left in place with a dangling
// project reference.
// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if !h.projects.Delete(c.Param("id")) {
		response.NotFound(c, "project not found")
		return
	}
	response.Success(c, gin.H{"message": "project deleted successfully"})
}
