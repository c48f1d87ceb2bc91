package services

import (
	"strings"
	"time"

	"github.com/Moetaz101/project-pal/internal/models"
	"github.com/Moetaz101/project-pal/internal/store"
	"github.com/google/uuid"
)

type CommentService struct {
	store         *store.Store
	notifications *NotificationService
}

func NewCommentService(st *store.Store, notifications *NotificationService) *CommentService {
	return &CommentService{store: st, notifications: notifications}
}

type CommentListRequest struct {
	TaskID string `form:"task_id"`
}

type CreateCommentRequest struct {
	TaskID   string   `json:"task_id" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Mentions []string `json:"mentions"`
}

type UpdateCommentRequest struct {
	Content  *string   `json:"content"`
	Mentions *[]string `json:"mentions"`
}

// CommentView is a comment joined with its resolved author. Author is nil
// when the reference dangles.
type CommentView struct {
	models.Comment
	Author *models.Member `json:"author,omitempty"`
}

// List returns comments, optionally scoped to one task, in insertion order.
func (s *CommentService) List(req *CommentListRequest) []models.Comment {
	out := make([]models.Comment, 0)
	for _, c := range s.store.Comments() {
		if req.TaskID != "" && c.TaskID != req.TaskID {
			continue
		}
		out = append(out, c)
	}
	return out
}

// GetByID returns a comment by id.
func (s *CommentService) GetByID(id string) (models.Comment, bool) {
	return s.store.Comment(id)
}

// Resolve joins a comment with its author, absent-safe.
func (s *CommentService) Resolve(c models.Comment) CommentView {
	view := CommentView{Comment: c}
	if m, ok := s.store.Member(c.AuthorID); ok {
		view.Author = &m
	}
	return view
}

// Create validates the request, inserts the comment and notifies mentioned
// members. The author is the acting member; it is stored as given even if it
// later dangles.
func (s *CommentService) Create(authorID string, req *CreateCommentRequest) (models.Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return models.Comment{}, requiredField("content")
	}
	if strings.TrimSpace(req.TaskID) == "" {
		return models.Comment{}, requiredField("task_id")
	}

	now := time.Now()
	c := models.Comment{
		ID:        uuid.NewString(),
		TaskID:    req.TaskID,
		AuthorID:  authorID,
		Content:   req.Content,
		Mentions:  req.Mentions,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.AddComment(c); err != nil {
		return models.Comment{}, err
	}
	if len(c.Mentions) > 0 {
		s.notifications.NotifyMention(authorID, c.TaskID, c.Mentions)
	}
	return c, nil
}

// Update applies the sparse request. Any update marks the comment edited,
// even one that changes nothing.
func (s *CommentService) Update(id string, req *UpdateCommentRequest) (models.Comment, bool, error) {
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return models.Comment{}, false, requiredField("content")
	}
	patch := store.CommentPatch{
		Content:  req.Content,
		Mentions: req.Mentions,
	}
	c, ok := s.store.UpdateComment(id, patch)
	return c, ok, nil
}

// Delete removes the comment.
func (s *CommentService) Delete(id string) bool {
	return s.store.DeleteComment(id)
}
