package handlers

import (
	"github.com/Moetaz101/project-pal/internal/middleware"
	"github.com/Moetaz101/project-pal/internal/services"
	"github.com/Moetaz101/project-pal/pkg/response"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// List returns comments, optionally scoped to one task, each joined with its
// author.
// GET /api/comments?task_id=...
func (h *CommentHandler) List(c *gin.Context) {
	var req services.CommentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comments := h.comments.List(&req)
	views := make([]services.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, h.comments.Resolve(comment))
	}
	response.Success(c, views)
}

// GetByID returns a comment joined with its author.
// GET /api/comments/:id
func (h *CommentHandler) GetByID(c *gin.Context) {
	comment, ok := h.comments.GetByID(c.Param("id"))
	if !ok {
		response.NotFound(c, "comment not found")
		return
	}
	response.Success(c, h.comments.Resolve(comment))
}

// Create posts a comment as the acting member and notifies mentioned
// members.
// POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req services.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.comments.Create(middleware.GetMemberID(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Set(middleware.AuditEntityID, comment.ID)
	response.Created(c, comment)
}

// Update edits a comment; any update marks it edited.
// PUT /api/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	var req services.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, ok, err := h.comments.Update(c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		response.NotFound(c, "comment not found")
		return
	}

	response.Success(c, comment)
}

// Delete removes a comment.
// DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if !h.comments.Delete(c.Param("id")) {
		response.NotFound(c, "comment not found")
		return
	}
	response.Success(c, gin.H{"message": "comment deleted successfully"})
}
