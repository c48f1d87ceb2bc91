package services

import (
	"testing"
	"time"

	"github.com/Moetaz101/project-pal/internal/models"
	"github.com/Moetaz101/project-pal/internal/store"
)

func seedTask(t *testing.T, st *store.Store, task models.Task) {
	t.Helper()
	if err := st.AddTask(task); err != nil {
		t.Fatalf("AddTask(%s) error = %v", task.ID, err)
	}
}

func TestTaskService_Create_Defaults(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewTaskService(st)

	task, err := svc.Create(&CreateTaskRequest{Title: "  Write docs  ", ProjectID: "p-1"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if task.Title != "Write docs" {
		t.Errorf("Title = %q, want trimmed", task.Title)
	}
	if task.Status != models.TaskTodo {
		t.Errorf("Status = %q, want todo default", task.Status)
	}
	if task.Priority != models.PriorityMedium {
		t.Errorf("Priority = %q, want medium default", task.Priority)
	}
	if task.ID == "" {
		t.Error("ID should be generated")
	}
}

func TestTaskService_Create_EmptyTitle(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewTaskService(st)

	_, err := svc.Create(&CreateTaskRequest{Title: "   "})
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestTaskService_Create_DanglingReferencesAllowed(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewTaskService(st)

	task, err := svc.Create(&CreateTaskRequest{
		Title:      "Orphan",
		ProjectID:  "no-such-project",
		AssignedTo: "no-such-member",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	view := svc.Resolve(task)
	if view.Project != nil {
		t.Error("dangling project reference should resolve to nil")
	}
	if view.Assignee != nil {
		t.Error("dangling assignee reference should resolve to nil")
	}
}

func TestTaskService_Resolve_JoinsReferences(t *testing.T) {
	st := store.New(store.Snapshot{})
	st.AddProject(models.Project{ID: "p-1", Name: "Website", Status: models.ProjectActive})
	st.AddMember(models.Member{ID: "m-1", Name: "Ada"})
	svc := NewTaskService(st)

	seedTask(t, st, models.Task{ID: "t-1", ProjectID: "p-1", AssignedTo: "m-1", Title: "Task"})

	task, _ := svc.GetByID("t-1")
	view := svc.Resolve(task)
	if view.Project == nil || view.Project.Name != "Website" {
		t.Errorf("Project = %+v, want joined Website", view.Project)
	}
	if view.Assignee == nil || view.Assignee.Name != "Ada" {
		t.Errorf("Assignee = %+v, want joined Ada", view.Assignee)
	}
}

func TestTaskService_List_FiltersCompose(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewTaskService(st)
	seedTask(t, st, models.Task{ID: "t-1", Title: "Fix login bug", Status: models.TaskTodo, Priority: models.PriorityHigh, ProjectID: "p-1"})
	seedTask(t, st, models.Task{ID: "t-2", Title: "Fix signup bug", Status: models.TaskDone, Priority: models.PriorityHigh, ProjectID: "p-1"})
	seedTask(t, st, models.Task{ID: "t-3", Title: "Write docs", Status: models.TaskTodo, Priority: models.PriorityLow, ProjectID: "p-2"})

	got := svc.List(&TaskListRequest{Search: "BUG", Status: "todo", Priority: "high"})
	if len(got) != 1 || got[0].ID != "t-1" {
		t.Fatalf("List() = %v, want [t-1]", ids(got))
	}
}

func TestTaskService_List_AllIsPassThrough(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewTaskService(st)
	seedTask(t, st, models.Task{ID: "t-1", Title: "A", Status: models.TaskTodo, Priority: models.PriorityLow})
	seedTask(t, st, models.Task{ID: "t-2", Title: "B", Status: models.TaskDone, Priority: models.PriorityHigh})

	all := svc.List(&TaskListRequest{Status: "all", Priority: "all"})
	empty := svc.List(&TaskListRequest{})
	if len(all) != 2 || len(empty) != 2 {
		t.Errorf("pass-through filters should return everything: all=%d empty=%d", len(all), len(empty))
	}
}

func TestTaskService_Upcoming_Ordering(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewTaskService(st)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	due := func(day int) time.Time { return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC) }
	seedTask(t, st, models.Task{ID: "t-1", Title: "mid", AssignedTo: "m-1", Status: models.TaskTodo, DueDate: due(10)})
	seedTask(t, st, models.Task{ID: "t-2", Title: "soon", AssignedTo: "m-1", Status: models.TaskTodo, DueDate: due(5)})
	seedTask(t, st, models.Task{ID: "t-3", Title: "late", AssignedTo: "m-1", Status: models.TaskTodo, DueDate: due(20)})

	got := svc.Upcoming("m-1", now)
	want := []string{"t-2", "t-1", "t-3"}
	if len(got) != len(want) {
		t.Fatalf("Upcoming() returned %d tasks, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Upcoming()[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestTaskService_Upcoming_Exclusions(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewTaskService(st)
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)

	seedTask(t, st, models.Task{ID: "t-done", AssignedTo: "m-1", Status: models.TaskDone, DueDate: future})
	seedTask(t, st, models.Task{ID: "t-other", AssignedTo: "m-2", Status: models.TaskTodo, DueDate: future})
	seedTask(t, st, models.Task{ID: "t-past", AssignedTo: "m-1", Status: models.TaskTodo, DueDate: now.Add(-time.Hour)})
	seedTask(t, st, models.Task{ID: "t-now", AssignedTo: "m-1", Status: models.TaskTodo, DueDate: now})
	seedTask(t, st, models.Task{ID: "t-ok", AssignedTo: "m-1", Status: models.TaskInProgress, DueDate: future})

	got := svc.Upcoming("m-1", now)
	if len(got) != 1 || got[0].ID != "t-ok" {
		t.Errorf("Upcoming() = %v, want [t-ok]", ids(got))
	}
}

func TestTaskService_Upcoming_CapAndStability(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewTaskService(st)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sameDue := now.Add(24 * time.Hour)

	for _, id := range []string{"t-1", "t-2", "t-3", "t-4", "t-5", "t-6", "t-7"} {
		seedTask(t, st, models.Task{ID: id, AssignedTo: "m-1", Status: models.TaskTodo, DueDate: sameDue})
	}

	got := svc.Upcoming("m-1", now)
	if len(got) != 5 {
		t.Fatalf("Upcoming() returned %d tasks, want cap of 5", len(got))
	}
	// Equal due dates keep collection order.
	for i, id := range []string{"t-1", "t-2", "t-3", "t-4", "t-5"} {
		if got[i].ID != id {
			t.Errorf("Upcoming()[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestTaskService_DueWithin(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewTaskService(st)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	seedTask(t, st, models.Task{ID: "t-in", AssignedTo: "m-1", Status: models.TaskTodo, DueDate: now.Add(6 * time.Hour)})
	seedTask(t, st, models.Task{ID: "t-edge", AssignedTo: "m-1", Status: models.TaskTodo, DueDate: now.Add(24 * time.Hour)})
	seedTask(t, st, models.Task{ID: "t-out", AssignedTo: "m-1", Status: models.TaskTodo, DueDate: now.Add(25 * time.Hour)})
	seedTask(t, st, models.Task{ID: "t-done", AssignedTo: "m-1", Status: models.TaskDone, DueDate: now.Add(6 * time.Hour)})
	seedTask(t, st, models.Task{ID: "t-past", AssignedTo: "m-1", Status: models.TaskTodo, DueDate: now.Add(-time.Hour)})

	got := svc.DueWithin(now, 24*time.Hour)
	if len(got) != 2 {
		t.Fatalf("DueWithin() = %v, want [t-in t-edge]", ids(got))
	}
}

func TestTaskService_Update_MissingID(t *testing.T) {
	st := store.New(store.Snapshot{})
	svc := NewTaskService(st)

	title := "New"
	if _, ok, err := svc.Update("nope", &UpdateTaskRequest{Title: &title}); err != nil || ok {
		t.Errorf("Update(missing) = ok=%v err=%v, want false, nil", ok, err)
	}
}

func ids(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
