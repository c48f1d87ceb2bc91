package handlers

import (
	"net/http"
	"testing"

	"github.com/Moetaz101/project-pal/internal/middleware"
	"github.com/Moetaz101/project-pal/internal/models"
	"github.com/Moetaz101/project-pal/internal/services"
	"github.com/Moetaz101/project-pal/internal/store"
	"github.com/gin-gonic/gin"
)

// asMember injects an identity the way AuthRequired would.
func asMember(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextMemberID, id)
	}
}

func newNotificationRouter(userID string) (*store.Store, *gin.Engine) {
	st := store.New(store.Snapshot{})
	h := NewNotificationHandler(services.NewNotificationService(st))

	r := gin.New()
	r.Use(asMember(userID))
	r.GET("/api/notifications", h.List)
	r.POST("/api/notifications/read-all", h.MarkAllRead)
	r.PUT("/api/notifications/:id/read", h.MarkRead)
	r.DELETE("/api/notifications/:id", h.Delete)
	return st, r
}

func TestNotificationHandler_List_ScopedToActingMember(t *testing.T) {
	st, r := newNotificationRouter("m-1")
	st.AddNotification(models.Notification{ID: "n-1", UserID: "m-1"})
	st.AddNotification(models.Notification{ID: "n-2", UserID: "m-2"})

	w := request(r, "GET", "/api/notifications", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data := dataField(t, w)
	items := data["items"].([]interface{})
	if len(items) != 1 {
		t.Errorf("items = %d, want only m-1's notification", len(items))
	}
	if got := data["unread_count"].(float64); got != 1 {
		t.Errorf("unread_count = %v, want 1", got)
	}
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	st, r := newNotificationRouter("m-1")
	st.AddNotification(models.Notification{ID: "n-1", UserID: "m-1"})
	st.AddNotification(models.Notification{ID: "n-2", UserID: "m-1"})
	st.AddNotification(models.Notification{ID: "n-3", UserID: "m-2"})

	w := request(r, "POST", "/api/notifications/read-all", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := dataField(t, w)["marked_read"].(float64); got != 2 {
		t.Errorf("marked_read = %v, want 2", got)
	}

	other, _ := st.Notification("n-3")
	if other.IsRead {
		t.Error("other member's notification should stay unread")
	}
}

func TestNotificationHandler_MarkRead_MissingID(t *testing.T) {
	_, r := newNotificationRouter("m-1")

	w := request(r, "PUT", "/api/notifications/ghost/read", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestNotificationHandler_Delete(t *testing.T) {
	st, r := newNotificationRouter("m-1")
	st.AddNotification(models.Notification{ID: "n-1", UserID: "m-1"})

	w := request(r, "DELETE", "/api/notifications/n-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if _, ok := st.Notification("n-1"); ok {
		t.Error("notification should be gone")
	}
}

func TestNotificationHandler_UnreadFilter(t *testing.T) {
	st, r := newNotificationRouter("m-1")
	st.AddNotification(models.Notification{ID: "n-1", UserID: "m-1"})
	st.AddNotification(models.Notification{ID: "n-2", UserID: "m-1", IsRead: true})

	w := request(r, "GET", "/api/notifications?filter=unread", nil)
	items := dataField(t, w)["items"].([]interface{})
	if len(items) != 1 {
		t.Errorf("unread items = %d, want 1", len(items))
	}
}
