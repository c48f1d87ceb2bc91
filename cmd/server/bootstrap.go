package main

import (
	"github.com/Moetaz101/project-pal/internal/config"
	"github.com/Moetaz101/project-pal/internal/handlers"
	"github.com/Moetaz101/project-pal/internal/services"
	"github.com/Moetaz101/project-pal/internal/store"
	"github.com/Moetaz101/project-pal/internal/utils"
	"github.com/Moetaz101/project-pal/pkg/logger"
)

// appServices holds the store, services and handlers the application wires at
// startup. The store is the single owner of all state; everything else gets
// it by reference.
type appServices struct {
	store    *store.Store
	session  *services.Session
	reminder *services.ReminderService

	activityService *services.ActivityService

	authHandler         *handlers.AuthHandler
	projectHandler      *handlers.ProjectHandler
	taskHandler         *handlers.TaskHandler
	memberHandler       *handlers.MemberHandler
	commentHandler      *handlers.CommentHandler
	notificationHandler *handlers.NotificationHandler
	activityHandler     *handlers.ActivityHandler
	dashboardHandler    *handlers.DashboardHandler
}

// bootstrap initializes all application dependencies: store, services,
// scheduler.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	var snap store.Snapshot
	if cfg.Seed.Enabled {
		snap = store.Seed()
		logger.Info().
			Int("members", len(snap.Members)).
			Int("projects", len(snap.Projects)).
			Int("tasks", len(snap.Tasks)).
			Msg("store seeded with sample data")
	}
	st := store.New(snap)

	session := services.NewSession()
	projectService := services.NewProjectService(st)
	taskService := services.NewTaskService(st)
	memberService := services.NewMemberService(st)
	notificationService := services.NewNotificationService(st)
	commentService := services.NewCommentService(st, notificationService)
	activityService := services.NewActivityService(st)
	dashboardService := services.NewDashboardService(st, taskService, notificationService, activityService)

	reminder := services.NewReminderService(taskService, memberService, notificationService, &cfg.Reminder)
	reminder.StartScheduler()

	return &appServices{
		store:    st,
		session:  session,
		reminder: reminder,

		activityService: activityService,

		authHandler:         handlers.NewAuthHandler(memberService, session, &cfg.JWT),
		projectHandler:      handlers.NewProjectHandler(projectService),
		taskHandler:         handlers.NewTaskHandler(taskService),
		memberHandler:       handlers.NewMemberHandler(memberService),
		commentHandler:      handlers.NewCommentHandler(commentService),
		notificationHandler: handlers.NewNotificationHandler(notificationService),
		activityHandler:     handlers.NewActivityHandler(activityService),
		dashboardHandler:    handlers.NewDashboardHandler(dashboardService),
	}
}

// shutdown stops the reminder scheduler.
func (s *appServices) shutdown() {
	s.reminder.StopScheduler()
	logger.Info().Msg("scheduler stopped")
}
