package handlers

import (
	"github.com/Moetaz101/project-pal/internal/config"
	"github.com/Moetaz101/project-pal/internal/middleware"
	"github.com/Moetaz101/project-pal/internal/services"
	"github.com/Moetaz101/project-pal/pkg/response"
	"github.com/gin-gonic/gin"
)

// AuthHandler implements the mock login flow: picking a member profile sets
// it as the current user and issues a token naming that member. No credential
// is checked anywhere.
type AuthHandler struct {
	members *services.MemberService
	session *services.Session
	jwtCfg  *config.JWTConfig
}

func NewAuthHandler(members *services.MemberService, session *services.Session, jwtCfg *config.JWTConfig) *AuthHandler {
	return &AuthHandler{members: members, session: session, jwtCfg: jwtCfg}
}

type LoginRequest struct {
	MemberID string `json:"member_id" binding:"required"`
}

// Login selects a member as the current user.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, ok := h.members.GetByID(req.MemberID)
	if !ok {
		response.NotFound(c, "member not found")
		return
	}

	token, err := services.IssueToken(member, h.jwtCfg.ExpireHour)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	h.session.SetCurrentUser(&member)
	response.Success(c, gin.H{
		"token":  token,
		"member": member,
	})
}

// GetCurrentUser returns the acting member, looked up fresh from the store.
// GET /api/auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	member, ok := h.members.GetByID(middleware.GetMemberID(c))
	if !ok {
		response.NotFound(c, "member not found")
		return
	}
	response.Success(c, member)
}

// Logout clears the current-user slot. The client drops its token.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.session.SetCurrentUser(nil)
	response.Success(c, gin.H{"message": "logged out successfully"})
}
