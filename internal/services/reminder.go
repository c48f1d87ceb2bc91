package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Moetaz101/project-pal/internal/config"
	"github.com/Moetaz101/project-pal/pkg/logger"
	"github.com/robfig/cron/v3"
)

// ReminderService runs a daily sweep that notifies assignees of tasks due
// within the next 24 hours.
type ReminderService struct {
	tasks         *TaskService
	members       *MemberService
	notifications *NotificationService
	cfg           *config.ReminderConfig
	scheduler     *cron.Cron
}

func NewReminderService(tasks *TaskService, members *MemberService, notifications *NotificationService, cfg *config.ReminderConfig) *ReminderService {
	return &ReminderService{
		tasks:         tasks,
		members:       members,
		notifications: notifications,
		cfg:           cfg,
	}
}

// StartScheduler registers the daily sweep at the configured time and starts
// the cron loop. Disabled config is a no-op.
func (s *ReminderService) StartScheduler() {
	if !s.cfg.Enabled {
		return
	}

	s.scheduler = cron.New()

	hour, minute := "9", "0"
	if parts := strings.Split(s.cfg.Time, ":"); len(parts) == 2 {
		hour = parts[0]
		minute = parts[1]
	}
	cronExpr := fmt.Sprintf("%s %s * * *", minute, hour)

	if _, err := s.scheduler.AddFunc(cronExpr, func() {
		s.Sweep(time.Now())
	}); err != nil {
		logger.Error().Err(err).Str("expr", cronExpr).Msg("failed to schedule reminder sweep")
		return
	}

	s.scheduler.Start()
	logger.Info().Str("time", s.cfg.Time).Msg("reminder scheduler started")
}

// StopScheduler stops the cron loop.
func (s *ReminderService) StopScheduler() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// Sweep sends a due-soon notification for every open task due within 24h of
// now whose assignee still resolves to an existing member. Returns how many
// reminders were sent.
func (s *ReminderService) Sweep(now time.Time) int {
	sent := 0
	for _, t := range s.tasks.DueWithin(now, 24*time.Hour) {
		if _, ok := s.members.GetByID(t.AssignedTo); !ok {
			continue
		}
		s.notifications.NotifyTaskDueSoon(t)
		sent++
	}
	if sent > 0 {
		logger.Info().Int("count", sent).Msg("due-date reminders sent")
	}
	return sent
}
