package store

import (
	"time"

	"github.com/Moetaz101/project-pal/internal/models"
)

// CommentPatch lists the comment fields an update may touch.
type CommentPatch struct {
	Content  *string
	Mentions *[]string
}

// AddComment appends a comment.
func (s *Store) AddComment(c models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.comments {
		if s.comments[i].ID == c.ID {
			return ErrDuplicateID
		}
	}
	s.comments = append(s.comments, cloneComment(c))
	return nil
}

// UpdateComment merges the patch into the matching comment, refreshes
// UpdatedAt and marks it edited even when the patch changes nothing.
// Unknown id is a no-op and returns false.
func (s *Store) UpdateComment(id string, patch CommentPatch) (models.Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.comments {
		if s.comments[i].ID != id {
			continue
		}
		c := &s.comments[i]
		if patch.Content != nil {
			c.Content = *patch.Content
		}
		if patch.Mentions != nil {
			c.Mentions = cloneStrings(*patch.Mentions)
		}
		c.UpdatedAt = time.Now()
		c.IsEdited = true
		return cloneComment(*c), true
	}
	return models.Comment{}, false
}

// DeleteComment removes the matching comment.
func (s *Store) DeleteComment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return true
		}
	}
	return false
}

// Comment looks up a comment by id.
func (s *Store) Comment(id string) (models.Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.comments {
		if s.comments[i].ID == id {
			return cloneComment(s.comments[i]), true
		}
	}
	return models.Comment{}, false
}

// Comments returns a copy of the comment collection in insertion order.
func (s *Store) Comments() []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commentsLocked()
}

func (s *Store) commentsLocked() []models.Comment {
	out := make([]models.Comment, 0, len(s.comments))
	for i := range s.comments {
		out = append(out, cloneComment(s.comments[i]))
	}
	return out
}
