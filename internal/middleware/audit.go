package middleware

import (
	"fmt"
	"strings"

	"github.com/Moetaz101/project-pal/internal/models"
	"github.com/Moetaz101/project-pal/internal/services"
	"github.com/gin-gonic/gin"
)

// Context keys handlers use to enrich the recorded activity. Create handlers
// must set AuditEntityID since the id does not exist in the route yet;
// AuditEntityName is optional everywhere.
const (
	AuditEntityID   = "audit_entity_id"
	AuditEntityName = "audit_entity_name"
)

// ActivityLog records successful write operations (POST/PUT/DELETE) on the
// four audited entity types into the activity trail. The actor is the
// authenticated member, so this middleware must run after AuthRequired.
func ActivityLog(activities *services.ActivityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method != "POST" && method != "PUT" && method != "DELETE" {
			c.Next()
			return
		}

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		entityType, ok := routeEntityType(c.FullPath())
		if !ok {
			return
		}

		entityID := c.GetString(AuditEntityID)
		if entityID == "" {
			entityID = c.Param("id")
		}

		action := formatAction(method, entityType, c.GetString(AuditEntityName))
		activities.Record(GetMemberID(c), action, entityType, entityID)
	}
}

// routeEntityType maps the first path segment after /api/ to an audited
// entity type. Notification and auth routes are not part of the trail.
func routeEntityType(fullPath string) (models.ActivityEntityType, bool) {
	path := strings.TrimPrefix(fullPath, "/api/")
	segment := path
	if i := strings.Index(path, "/"); i >= 0 {
		segment = path[:i]
	}

	switch segment {
	case "projects":
		return models.EntityProject, true
	case "tasks":
		return models.EntityTask, true
	case "members":
		return models.EntityMember, true
	case "comments":
		return models.EntityComment, true
	}
	return "", false
}

func formatAction(method string, entityType models.ActivityEntityType, name string) string {
	verb := method
	switch method {
	case "POST":
		verb = "created"
	case "PUT":
		verb = "updated"
	case "DELETE":
		verb = "deleted"
	}
	if name != "" {
		return fmt.Sprintf("%s %s %q", verb, entityType, name)
	}
	return fmt.Sprintf("%s a %s", verb, entityType)
}
