package services

import (
	"time"

	"github.com/Moetaz101/project-pal/internal/models"
	"github.com/Moetaz101/project-pal/internal/store"
)

// DashboardService derives the landing-page numbers from store snapshots.
// Everything here is a pure read; it is recomputed on every request.
type DashboardService struct {
	store         *store.Store
	tasks         *TaskService
	notifications *NotificationService
	activities    *ActivityService
}

func NewDashboardService(st *store.Store, tasks *TaskService, notifications *NotificationService, activities *ActivityService) *DashboardService {
	return &DashboardService{
		store:         st,
		tasks:         tasks,
		notifications: notifications,
		activities:    activities,
	}
}

type DashboardStats struct {
	ActiveProjects      int `json:"active_projects"`
	ActiveTasks         int `json:"active_tasks"`
	UnreadNotifications int `json:"unread_notifications"`
	TeamMembers         int `json:"team_members"`
}

type DashboardResponse struct {
	Stats          DashboardStats   `json:"stats"`
	UpcomingTasks  []models.Task    `json:"upcoming_tasks"`
	RecentActivity []ActivityView   `json:"recent_activity"`
	ActiveProjects []models.Project `json:"active_projects"`
}

// Overview computes the dashboard for the given member: project and team
// counts, the member's open tasks and unread notifications, their next five
// upcoming tasks and the five most recent activities.
func (s *DashboardService) Overview(userID string) *DashboardResponse {
	now := time.Now()

	activeProjects := make([]models.Project, 0)
	for _, p := range s.store.Projects() {
		if p.Status == models.ProjectActive {
			activeProjects = append(activeProjects, p)
		}
	}

	activeTasks := 0
	for _, t := range s.store.Tasks() {
		if t.AssignedTo == userID && t.Status != models.TaskDone {
			activeTasks++
		}
	}

	return &DashboardResponse{
		Stats: DashboardStats{
			ActiveProjects:      len(activeProjects),
			ActiveTasks:         activeTasks,
			UnreadNotifications: s.notifications.UnreadCount(userID),
			TeamMembers:         len(s.store.Members()),
		},
		UpcomingTasks:  s.tasks.Upcoming(userID, now),
		RecentActivity: s.activities.Recent(),
		ActiveProjects: activeProjects,
	}
}
