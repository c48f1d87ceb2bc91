package services

import (
	"testing"

	"github.com/Moetaz101/project-pal/internal/models"
)

func TestSession_LoginLogout(t *testing.T) {
	s := NewSession()

	if s.IsAuthenticated() {
		t.Error("fresh session should be unauthenticated")
	}
	if s.CurrentUser() != nil {
		t.Error("fresh session should have no current user")
	}

	ada := models.Member{ID: "m-1", Name: "Ada"}
	s.SetCurrentUser(&ada)
	if !s.IsAuthenticated() {
		t.Error("session should be authenticated after login")
	}
	if got := s.CurrentUser(); got == nil || got.ID != "m-1" {
		t.Errorf("CurrentUser() = %+v, want m-1", got)
	}

	s.SetCurrentUser(nil)
	if s.IsAuthenticated() {
		t.Error("session should be unauthenticated after logout")
	}
}

func TestSession_SingleSlot(t *testing.T) {
	s := NewSession()
	s.SetCurrentUser(&models.Member{ID: "m-1", Name: "Ada"})
	s.SetCurrentUser(&models.Member{ID: "m-2", Name: "Bob"})

	if got := s.CurrentUser(); got.ID != "m-2" {
		t.Errorf("CurrentUser() = %s, want replacement m-2", got.ID)
	}
}

func TestSession_ReturnsCopies(t *testing.T) {
	s := NewSession()
	ada := models.Member{ID: "m-1", Name: "Ada"}
	s.SetCurrentUser(&ada)

	ada.Name = "mutated"
	if got := s.CurrentUser(); got.Name != "Ada" {
		t.Error("mutating the caller's struct should not affect the slot")
	}

	got := s.CurrentUser()
	got.Name = "mutated"
	if again := s.CurrentUser(); again.Name != "Ada" {
		t.Error("mutating a returned copy should not affect the slot")
	}
}
