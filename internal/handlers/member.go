package handlers

import (
	"github.com/Moetaz101/project-pal/internal/middleware"
	"github.com/Moetaz101/project-pal/internal/services"
	"github.com/Moetaz101/project-pal/pkg/response"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	members *services.MemberService
}

func NewMemberHandler(members *services.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

// List returns members filtered by search text (name, email, skills) and
// role.
// GET /api/members
func (h *MemberHandler) List(c *gin.Context) {
	var req services.MemberListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, h.members.List(&req))
}

// GetByID returns a member by id.
// GET /api/members/:id
func (h *MemberHandler) GetByID(c *gin.Context) {
	member, ok := h.members.GetByID(c.Param("id"))
	if !ok {
		response.NotFound(c, "member not found")
		return
	}
	response.Success(c, member)
}

// GetStats returns the member's project and task counts. An id with no
// associations, including one that never existed, gets zeros rather than an
// error.
// GET /api/members/:id/stats
func (h *MemberHandler) GetStats(c *gin.Context) {
	response.Success(c, h.members.Stats(c.Param("id")))
}

// Create creates a new member.
// POST /api/members
func (h *MemberHandler) Create(c *gin.Context) {
	var req services.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.members.Create(&req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Set(middleware.AuditEntityID, member.ID)
	c.Set(middleware.AuditEntityName, member.Name)
	response.Created(c, member)
}

// Update applies a sparse update to a member.
// PUT /api/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	var req services.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, ok, err := h.members.Update(c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		response.NotFound(c, "member not found")
		return
	}

	c.Set(middleware.AuditEntityName, member.Name)
	response.Success(c, member)
}

// Delete removes a member. Tasks, projects and comments keep their
// references to the id; those now resolve to absent.
// DELETE /api/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	if !h.members.Delete(c.Param("id")) {
		response.NotFound(c, "member not found")
		return
	}
	response.Success(c, gin.H{"message": "member deleted successfully"})
}
