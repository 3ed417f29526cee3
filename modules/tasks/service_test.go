package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/example/task-api/domain/task"
)

// newTestService builds a TaskService over an in-memory database with a
// fixed clock.
func newTestService(t *testing.T) *TaskService {
	t.Helper()

	svc := NewTaskService(NewRepository(setupTestDB(t)))
	svc.now = func() time.Time { return now }
	return svc
}

func strPtr(s string) *string {
	return &s
}

func TestTaskService_CreateDefaults(t *testing.T) {
	svc := newTestService(t)

	task, err := svc.Create(context.Background(), CreateTaskRequest{
		OwnerID: "user-a",
		Title:   "Buy groceries",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if task.Status != domain.StatusPending {
		t.Errorf("status = %v, want default pending", task.Status)
	}
	if task.Priority != domain.PriorityMedium {
		t.Errorf("priority = %v, want default medium", task.Priority)
	}
	if task.OwnerID != "user-a" {
		t.Errorf("owner = %v, want user-a", task.OwnerID)
	}
	if task.ID == "" {
		t.Error("task ID not assigned")
	}
}

func TestTaskService_CreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		req       CreateTaskRequest
		wantField string
	}{
		{
			name:      "four character title",
			req:       CreateTaskRequest{OwnerID: "u", Title: "task"},
			wantField: "title",
		},
		{
			name:      "due date one second in the past",
			req:       CreateTaskRequest{OwnerID: "u", Title: "Valid title", DueDate: timePtr(now.Add(-time.Second))},
			wantField: "due_date",
		},
		{
			name:      "due date exactly now",
			req:       CreateTaskRequest{OwnerID: "u", Title: "Valid title", DueDate: timePtr(now)},
			wantField: "due_date",
		},
		{
			name:      "invalid status",
			req:       CreateTaskRequest{OwnerID: "u", Title: "Valid title", Status: strPtr("archived")},
			wantField: "status",
		},
		{
			name:      "invalid priority",
			req:       CreateTaskRequest{OwnerID: "u", Title: "Valid title", Priority: strPtr("urgent")},
			wantField: "priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)

			_, err := svc.Create(context.Background(), tt.req)
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Create() error = %v, want ValidationErrors", err)
			}

			found := false
			for _, fe := range verrs {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v missing field %q", verrs, tt.wantField)
			}

			// Nothing persisted on rejection
			result, listErr := svc.List(context.Background(), ListTasksRequest{OwnerID: tt.req.OwnerID})
			if listErr != nil {
				t.Fatalf("List() error = %v", listErr)
			}
			if result.Summary.TotalCount != 0 {
				t.Errorf("rejected create persisted %d tasks", result.Summary.TotalCount)
			}
		})
	}
}

func TestTaskService_CreateBoundaries(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Five trimmed characters pass, and a one-day-out due date passes
	if _, err := svc.Create(ctx, CreateTaskRequest{
		OwnerID: "u",
		Title:   " tasks ",
		DueDate: timePtr(now.Add(24 * time.Hour)),
	}); err != nil {
		t.Errorf("Create() with minimal valid input error = %v", err)
	}
}

func TestTaskService_OwnershipScenario(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskRequest{
		OwnerID:  "user-a",
		Title:    "Buy groceries",
		Priority: strPtr("high"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// User A sees one high-priority task, not overdue, no deadline
	resultA, err := svc.List(ctx, ListTasksRequest{OwnerID: "user-a"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if resultA.Summary.TotalCount != 1 {
		t.Fatalf("user-a total = %d, want 1", resultA.Summary.TotalCount)
	}
	if resultA.Summary.PriorityCounts.High != 1 {
		t.Errorf("user-a high count = %d, want 1", resultA.Summary.PriorityCounts.High)
	}

	view := NewTaskResponse(resultA.Page[0], now)
	if view.IsOverdue {
		t.Error("task without due date reported overdue")
	}
	if view.DaysRemaining != nil {
		t.Errorf("days remaining = %v, want nil", *view.DaysRemaining)
	}

	// User B sees nothing, and the task's id is a 404 for them
	resultB, err := svc.List(ctx, ListTasksRequest{OwnerID: "user-b"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if resultB.Summary.TotalCount != 0 {
		t.Errorf("user-b total = %d, want 0", resultB.Summary.TotalCount)
	}
	if _, err := svc.Get(ctx, "user-b", created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Get() under user-b error = %v, want ErrTaskNotFound", err)
	}
}

func TestTaskService_UpdatePartial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskRequest{
		OwnerID:     "user-a",
		Title:       "Write the report",
		Description: "first draft",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(ctx, UpdateTaskRequest{
		OwnerID: "user-a",
		ID:      created.ID,
		Status:  strPtr("in_progress"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Status != domain.StatusInProgress {
		t.Errorf("status = %v, want in_progress", updated.Status)
	}
	if updated.Title != "Write the report" || updated.Description != "first draft" {
		t.Error("fields absent from the request were changed")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("created_at changed during update")
	}
	if updated.OwnerID != "user-a" {
		t.Error("owner changed during update")
	}
}

func TestTaskService_UpdateValidationAbortsWrite(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskRequest{OwnerID: "user-a", Title: "Write the report"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err = svc.Update(ctx, UpdateTaskRequest{
		OwnerID: "user-a",
		ID:      created.ID,
		Title:   strPtr("abc"),
		Status:  strPtr("in_progress"),
	})
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Update() error = %v, want ValidationErrors", err)
	}

	// The valid status change must not have been applied either
	current, err := svc.Get(ctx, "user-a", created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if current.Status != domain.StatusPending {
		t.Errorf("status = %v after failed update, want pending", current.Status)
	}
	if current.Title != "Write the report" {
		t.Errorf("title = %q after failed update", current.Title)
	}
}

func TestTaskService_UpdateClearDueDate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskRequest{
		OwnerID: "user-a",
		Title:   "Write the report",
		DueDate: timePtr(now.Add(48 * time.Hour)),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(ctx, UpdateTaskRequest{
		OwnerID:      "user-a",
		ID:           created.ID,
		ClearDueDate: true,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.DueDate != nil {
		t.Errorf("due date = %v, want cleared", updated.DueDate)
	}
}

func TestTaskService_Transitions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskRequest{OwnerID: "user-a", Title: "Write the report"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	started, err := svc.Start(ctx, "user-a", created.ID)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if started.Status != domain.StatusInProgress {
		t.Errorf("status = %v, want in_progress", started.Status)
	}

	// Start on a non-pending task is a no-op
	again, err := svc.Start(ctx, "user-a", created.ID)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if again.Status != domain.StatusInProgress {
		t.Errorf("status = %v after repeated Start, want in_progress", again.Status)
	}

	done, err := svc.Complete(ctx, "user-a", created.ID)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if done.Status != domain.StatusCompleted {
		t.Errorf("status = %v, want completed", done.Status)
	}

	// Transitions are owner-gated too
	if _, err := svc.Start(ctx, "user-b", created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Start() under user-b error = %v, want ErrTaskNotFound", err)
	}
}

func TestTaskService_OverdueLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Insert a task whose due date has already passed; Create would reject
	// it, so seed the repository directly the way time would produce it.
	yesterday := now.Add(-24 * time.Hour)
	seeded := &domain.Task{
		ID:       "overdue-task",
		Title:    "File the expense report",
		Status:   domain.StatusPending,
		Priority: domain.PriorityMedium,
		DueDate:  &yesterday,
		OwnerID:  "user-a",
	}
	if err := svc.repo.Create(seeded); err != nil {
		t.Fatalf("seed Create() error = %v", err)
	}

	got, err := svc.Get(ctx, "user-a", "overdue-task")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if view := NewTaskResponse(got, now); !view.IsOverdue {
		t.Error("pending task due yesterday should be overdue")
	}

	completed, err := svc.Complete(ctx, "user-a", "overdue-task")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	view := NewTaskResponse(completed, now)
	if view.IsOverdue {
		t.Error("completed task should not be overdue")
	}
	if completed.DueDate == nil || !completed.DueDate.Equal(yesterday) {
		t.Error("completing must not change the due date")
	}

	// And the overdue list filter agrees
	result, err := svc.List(ctx, ListTasksRequest{OwnerID: "user-a", Query: ListQuery{IsOverdue: "true"}})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if result.Summary.TotalCount != 0 {
		t.Errorf("is_overdue=true matched %d tasks after completion, want 0", result.Summary.TotalCount)
	}
}

func TestTaskService_ListFiltersSortsAndPaginates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	titles := []string{"Alpha task", "Bravo task", "Charlie task", "Delta task", "Echo task"}
	for _, title := range titles {
		if _, err := svc.Create(ctx, CreateTaskRequest{OwnerID: "user-a", Title: title}); err != nil {
			t.Fatalf("Create(%q) error = %v", title, err)
		}
	}

	result, err := svc.List(ctx, ListTasksRequest{
		OwnerID: "user-a",
		Query:   ListQuery{Ordering: "title", Limit: 2, Offset: 2},
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if result.Summary.TotalCount != 5 {
		t.Errorf("total = %d, want 5 (meta covers the filtered set, not the page)", result.Summary.TotalCount)
	}
	if len(result.Page) != 2 {
		t.Fatalf("page size = %d, want 2", len(result.Page))
	}
	if result.Page[0].Title != "Charlie task" || result.Page[1].Title != "Delta task" {
		t.Errorf("page = %q, %q; want Charlie task, Delta task", result.Page[0].Title, result.Page[1].Title)
	}
}

func TestTaskService_Delete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskRequest{OwnerID: "user-a", Title: "Temporary task"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(ctx, "user-b", created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Delete() under user-b error = %v, want ErrTaskNotFound", err)
	}
	if err := svc.Delete(ctx, "user-a", created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Get(ctx, "user-a", created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrTaskNotFound", err)
	}
}
