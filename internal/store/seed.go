package store

import (
	"time"

	"github.com/Moetaz101/project-pal/internal/models"
)

// Seed returns the built-in sample data the store is initialized with when
// seeding is enabled. Due dates and timestamps are laid out relative to now
// so the dashboard has upcoming tasks and a recent activity feed on first
// launch.
func Seed() Snapshot {
	now := time.Now()
	day := 24 * time.Hour

	members := []models.Member{
		{
			ID: "m-1", Name: "Sarah Chen", Email: "sarah@projectpal.dev",
			Role: models.RoleAdmin, Avatar: "SC",
			Skills: []string{"Leadership", "Architecture", "Go"},
			Status: models.MemberAvailable, CreatedAt: now.Add(-90 * day),
		},
		{
			ID: "m-2", Name: "Marc Dubois", Email: "marc@projectpal.dev",
			Role: models.RoleProjectManager, Avatar: "MD",
			Skills: []string{"Planning", "Scrum", "Communication"},
			Status: models.MemberBusy, CreatedAt: now.Add(-80 * day),
		},
		{
			ID: "m-3", Name: "Priya Patel", Email: "priya@projectpal.dev",
			Role: models.RoleDeveloper, Avatar: "PP",
			Skills: []string{"React", "TypeScript", "Node.js"},
			Status: models.MemberAvailable, CreatedAt: now.Add(-75 * day),
		},
		{
			ID: "m-4", Name: "Leo Fontaine", Email: "leo@projectpal.dev",
			Role: models.RoleDesigner, Avatar: "LF",
			Skills: []string{"Figma", "UI Design", "Prototyping"},
			Status: models.MemberAway, CreatedAt: now.Add(-60 * day),
		},
		{
			ID: "m-5", Name: "Ana Silva", Email: "ana@projectpal.dev",
			Role: models.RoleTester, Avatar: "AS",
			Skills: []string{"QA", "Automation", "Cypress"},
			Status: models.MemberAvailable, CreatedAt: now.Add(-45 * day),
		},
	}

	projects := []models.Project{
		{
			ID: "p-1", Name: "Website Redesign",
			Description: "Complete overhaul of the marketing site with the new brand.",
			Status:      models.ProjectActive,
			StartDate:   now.Add(-30 * day), EndDate: now.Add(60 * day),
			MemberIDs: []string{"m-2", "m-3", "m-4"}, Progress: 45,
			CreatedAt: now.Add(-30 * day), UpdatedAt: now.Add(-2 * day),
		},
		{
			ID: "p-2", Name: "Mobile App",
			Description: "Native companion app for iOS and Android.",
			Status:      models.ProjectPlanning,
			StartDate:   now.Add(14 * day), EndDate: now.Add(120 * day),
			MemberIDs: []string{"m-1", "m-3"}, Progress: 5,
			CreatedAt: now.Add(-10 * day), UpdatedAt: now.Add(-10 * day),
		},
		{
			ID: "p-3", Name: "API Migration",
			Description: "Move the public API from v1 to v2 and deprecate old endpoints.",
			Status:      models.ProjectActive,
			StartDate:   now.Add(-60 * day), EndDate: now.Add(30 * day),
			MemberIDs: []string{"m-1", "m-3", "m-5"}, Progress: 70,
			CreatedAt: now.Add(-60 * day), UpdatedAt: now.Add(-1 * day),
		},
	}

	tasks := []models.Task{
		{
			ID: "t-1", ProjectID: "p-1", Title: "Design landing page",
			Description: "Hero section, pricing grid and footer.",
			Status:      models.TaskInProgress, Priority: models.PriorityHigh,
			AssignedTo: "m-4", DueDate: now.Add(3 * day),
			CreatedAt: now.Add(-12 * day), UpdatedAt: now.Add(-1 * day),
		},
		{
			ID: "t-2", ProjectID: "p-1", Title: "Implement responsive navbar",
			Description: "Mobile drawer plus desktop menu.",
			Status:      models.TaskTodo, Priority: models.PriorityMedium,
			AssignedTo: "m-3", DueDate: now.Add(7 * day),
			CreatedAt: now.Add(-8 * day), UpdatedAt: now.Add(-8 * day),
		},
		{
			ID: "t-3", ProjectID: "p-3", Title: "Write v2 auth endpoints",
			Description: "Token issue, refresh and revoke.",
			Status:      models.TaskInReview, Priority: models.PriorityCritical,
			AssignedTo: "m-3", DueDate: now.Add(1 * day),
			CreatedAt: now.Add(-15 * day), UpdatedAt: now.Add(-2 * day),
		},
		{
			ID: "t-4", ProjectID: "p-3", Title: "Regression suite for v1 parity",
			Description: "Cover every v1 endpoint against v2 responses.",
			Status:      models.TaskTodo, Priority: models.PriorityHigh,
			AssignedTo: "m-5", DueDate: now.Add(10 * day),
			CreatedAt: now.Add(-6 * day), UpdatedAt: now.Add(-6 * day),
		},
		{
			ID: "t-5", ProjectID: "p-1", Title: "Migrate blog content",
			Description: "Port existing articles into the new CMS.",
			Status:      models.TaskDone, Priority: models.PriorityLow,
			AssignedTo: "m-3", DueDate: now.Add(-5 * day),
			CreatedAt: now.Add(-20 * day), UpdatedAt: now.Add(-5 * day),
		},
		{
			ID: "t-6", ProjectID: "p-2", Title: "Draft app navigation map",
			Description: "Screen inventory and flows for the MVP.",
			Status:      models.TaskTodo, Priority: models.PriorityMedium,
			AssignedTo: "m-2", DueDate: now.Add(14 * day),
			CreatedAt: now.Add(-3 * day), UpdatedAt: now.Add(-3 * day),
		},
	}

	comments := []models.Comment{
		{
			ID: "c-1", TaskID: "t-1", AuthorID: "m-2",
			Content:   "Can we get a first pass by Thursday?",
			Mentions:  []string{"m-4"},
			CreatedAt: now.Add(-2 * day), UpdatedAt: now.Add(-2 * day),
		},
		{
			ID: "c-2", TaskID: "t-3", AuthorID: "m-1",
			Content:   "Revoke flow needs a test for expired tokens.",
			Mentions:  []string{"m-3", "m-5"},
			CreatedAt: now.Add(-1 * day), UpdatedAt: now.Add(-1 * day),
		},
	}

	// Most recent first, matching store ordering for these collections.
	notifications := []models.Notification{
		{
			ID: "n-1", UserID: "m-3", Type: models.NotifyComment,
			Priority: models.NotifyNormal, Title: "You were mentioned",
			Message:   "Sarah Chen mentioned you on \"Write v2 auth endpoints\"",
			ActionURL: "/tasks", CreatedAt: now.Add(-1 * day),
		},
		{
			ID: "n-2", UserID: "m-4", Type: models.NotifyTask,
			Priority: models.NotifyHigh, Title: "Task due soon",
			Message:   "\"Design landing page\" is due in 3 days",
			ActionURL: "/tasks", CreatedAt: now.Add(-2 * day),
		},
		{
			ID: "n-3", UserID: "m-3", Type: models.NotifyProject,
			Priority: models.NotifyNormal, Title: "Added to project",
			Message:   "You were added to \"Mobile App\"",
			IsRead:    true,
			ActionURL: "/projects", CreatedAt: now.Add(-10 * day),
		},
	}

	activities := []models.Activity{
		{
			ID: "a-1", UserID: "m-3", Action: "moved \"Write v2 auth endpoints\" to review",
			EntityType: models.EntityTask, EntityID: "t-3", Timestamp: now.Add(-2 * day),
		},
		{
			ID: "a-2", UserID: "m-2", Action: "commented on \"Design landing page\"",
			EntityType: models.EntityComment, EntityID: "c-1", Timestamp: now.Add(-2 * day),
		},
		{
			ID: "a-3", UserID: "m-1", Action: "created project \"Mobile App\"",
			EntityType: models.EntityProject, EntityID: "p-2", Timestamp: now.Add(-10 * day),
		},
	}

	return Snapshot{
		Projects:      projects,
		Tasks:         tasks,
		Members:       members,
		Comments:      comments,
		Notifications: notifications,
		Activities:    activities,
	}
}
