package middleware

import (
	"net/http"
	"strings"

	"github.com/Moetaz101/project-pal/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	ContextMemberID   = "member_id"
	ContextMemberName = "member_name"
	ContextRole       = "role"
)

// AuthRequired checks for a valid token and stores the acting member's
// identity in the request context. The token proves nothing beyond which
// profile was picked at login; there are no credentials in this system.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextMemberID, claims.MemberID)
		c.Set(ContextMemberName, claims.Name)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// GetMemberID gets the acting member's id from context.
func GetMemberID(c *gin.Context) string {
	if id, exists := c.Get(ContextMemberID); exists {
		return id.(string)
	}
	return ""
}

// GetMemberName gets the acting member's name from context.
func GetMemberName(c *gin.Context) string {
	if name, exists := c.Get(ContextMemberName); exists {
		return name.(string)
	}
	return ""
}

// GetRole gets the acting member's role from context.
func GetRole(c *gin.Context) string {
	if role, exists := c.Get(ContextRole); exists {
		return role.(string)
	}
	return ""
}
