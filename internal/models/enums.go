package models

// ProjectStatus tracks a project through its lifecycle.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted:
		return true
	}
	return false
}

// TaskStatus is the kanban column a task sits in.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskInReview   TaskStatus = "in-review"
	TaskDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskInReview, TaskDone:
		return true
	}
	return false
}

// TaskPriority orders tasks by urgency.
type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// MemberRole is a display role, not a permission set.
type MemberRole string

const (
	RoleAdmin          MemberRole = "admin"
	RoleProjectManager MemberRole = "project-manager"
	RoleDeveloper      MemberRole = "developer"
	RoleDesigner       MemberRole = "designer"
	RoleTester         MemberRole = "tester"
)

func (r MemberRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleDeveloper, RoleDesigner, RoleTester:
		return true
	}
	return false
}

// MemberStatus is the member's current availability.
type MemberStatus string

const (
	MemberAvailable MemberStatus = "available"
	MemberBusy      MemberStatus = "busy"
	MemberAway      MemberStatus = "away"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case MemberAvailable, MemberBusy, MemberAway:
		return true
	}
	return false
}

// NotificationType classifies what a notification is about.
type NotificationType string

const (
	NotifyTask    NotificationType = "task"
	NotifyComment NotificationType = "comment"
	NotifyProject NotificationType = "project"
	NotifySystem  NotificationType = "system"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotifyTask, NotifyComment, NotifyProject, NotifySystem:
		return true
	}
	return false
}

// NotificationPriority controls how prominently a notification is shown.
type NotificationPriority string

const (
	NotifyHigh   NotificationPriority = "high"
	NotifyNormal NotificationPriority = "normal"
	NotifyLow    NotificationPriority = "low"
)

func (p NotificationPriority) Valid() bool {
	switch p {
	case NotifyHigh, NotifyNormal, NotifyLow:
		return true
	}
	return false
}

// ActivityEntityType names the kind of record an activity entry refers to.
type ActivityEntityType string

const (
	EntityProject ActivityEntityType = "project"
	EntityTask    ActivityEntityType = "task"
	EntityMember  ActivityEntityType = "member"
	EntityComment ActivityEntityType = "comment"
)
