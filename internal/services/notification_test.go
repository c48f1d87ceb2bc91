package services

import (
	"testing"

	"github.com/Moetaz101/project-pal/internal/models"
	"github.com/Moetaz101/project-pal/internal/store"
)

func TestNotificationService_ListForUser(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewNotificationService(st)
	st.AddNotification(models.Notification{ID: "n-1", UserID: "m-1"})
	st.AddNotification(models.Notification{ID: "n-2", UserID: "m-2"})
	st.AddNotification(models.Notification{ID: "n-3", UserID: "m-1", IsRead: true})

	got := svc.ListForUser("m-1", &NotificationListRequest{})
	if len(got) != 2 {
		t.Fatalf("ListForUser() = %d notifications, want 2", len(got))
	}
	// Most recent first.
	if got[0].ID != "n-3" || got[1].ID != "n-1" {
		t.Errorf("order = [%s %s], want [n-3 n-1]", got[0].ID, got[1].ID)
	}

	unread := svc.ListForUser("m-1", &NotificationListRequest{Filter: "unread"})
	if len(unread) != 1 || unread[0].ID != "n-1" {
		t.Errorf("unread filter = %d notifications, want just n-1", len(unread))
	}
}

func TestNotificationService_UnreadCount(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewNotificationService(st)
	st.AddNotification(models.Notification{ID: "n-1", UserID: "m-1"})
	st.AddNotification(models.Notification{ID: "n-2", UserID: "m-1", IsRead: true})
	st.AddNotification(models.Notification{ID: "n-3", UserID: "m-2"})

	if got := svc.UnreadCount("m-1"); got != 1 {
		t.Errorf("UnreadCount(m-1) = %d, want 1", got)
	}
	if got := svc.UnreadCount("nobody"); got != 0 {
		t.Errorf("UnreadCount(nobody) = %d, want 0", got)
	}
}

func TestNotificationService_Create_Defaults(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewNotificationService(st)

	n, err := svc.Create(&CreateNotificationRequest{UserID: "m-1", Title: "Heads up"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if n.Type != models.NotifySystem {
		t.Errorf("Type = %q, want system default", n.Type)
	}
	if n.Priority != models.NotifyNormal {
		t.Errorf("Priority = %q, want normal default", n.Priority)
	}
	if n.IsRead {
		t.Error("new notifications start unread")
	}
}

func TestNotificationService_MarkAllReadFor(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewNotificationService(st)
	st.AddNotification(models.Notification{ID: "n-1", UserID: "m-1"})
	st.AddNotification(models.Notification{ID: "n-2", UserID: "m-1"})
	st.AddNotification(models.Notification{ID: "n-3", UserID: "m-2"})

	if got := svc.MarkAllReadFor("m-1"); got != 2 {
		t.Errorf("MarkAllReadFor(m-1) = %d, want 2", got)
	}
	if got := svc.UnreadCount("m-1"); got != 0 {
		t.Errorf("UnreadCount(m-1) after mark-all = %d, want 0", got)
	}
	if got := svc.UnreadCount("m-2"); got != 1 {
		t.Errorf("other member's notifications should be untouched, unread = %d", got)
	}
}

func TestNotificationService_NotifyMention(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewNotificationService(st)
	st.AddMember(models.Member{ID: "m-1", Name: "Ada"})
	st.AddMember(models.Member{ID: "m-2", Name: "Bob"})
	st.AddTask(models.Task{ID: "t-1", Title: "Ship it"})

	svc.NotifyMention("m-1", "t-1", []string{"m-2", "ghost"})

	if got := svc.UnreadCount("m-2"); got != 1 {
		t.Fatalf("mentioned member should get one notification, got %d", got)
	}
	if got := svc.UnreadCount("ghost"); got != 0 {
		t.Errorf("unknown mention should be skipped, got %d notifications", got)
	}

	ns := svc.ListForUser("m-2", &NotificationListRequest{})
	if ns[0].Type != models.NotifyComment {
		t.Errorf("Type = %q, want comment", ns[0].Type)
	}
}

func TestNotificationService_NotifyTaskDueSoon(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewNotificationService(st)

	svc.NotifyTaskDueSoon(models.Task{ID: "t-1", Title: "Ship it", AssignedTo: "m-1"})

	ns := svc.ListForUser("m-1", &NotificationListRequest{})
	if len(ns) != 1 {
		t.Fatalf("assignee should get one notification, got %d", len(ns))
	}
	if ns[0].Type != models.NotifyTask || ns[0].Priority != models.NotifyHigh {
		t.Errorf("got type=%q priority=%q, want task/high", ns[0].Type, ns[0].Priority)
	}
}
