package tasks

import (
	"context"
	"time"

	domain "github.com/example/task-api/domain/task"
	"github.com/google/uuid"
)

// TaskService implements the task operations over an owner-scoped
// repository. The clock is injectable so due-date validation and the
// computed overdue/days-remaining fields are deterministic under test.
type TaskService struct {
	repo *Repository
	now  func() time.Time
}

// NewTaskService creates a TaskService backed by the real clock.
func NewTaskService(repo *Repository) *TaskService {
	return &TaskService{
		repo: repo,
		now:  time.Now,
	}
}

// Create validates the payload and persists a new task for the
// requesting owner. Status defaults to pending and priority to medium
// when not supplied. Validation failures abort before any write.
func (s *TaskService) Create(_ context.Context, req CreateTaskRequest) (*domain.Task, error) {
	now := s.now()

	var errs ValidationErrors
	if fe := validateTitle(req.Title); fe != nil {
		errs = append(errs, *fe)
	}
	status, fe := validateStatus(req.Status, domain.StatusPending)
	if fe != nil {
		errs = append(errs, *fe)
	}
	priority, fe := validatePriority(req.Priority, domain.PriorityMedium)
	if fe != nil {
		errs = append(errs, *fe)
	}
	if fe := validateDueDate(req.DueDate, now); fe != nil {
		errs = append(errs, *fe)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	t := &domain.Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
		OwnerID:     req.OwnerID,
	}

	if err := s.repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Get fetches a single task for the requesting owner. A task owned by
// someone else surfaces as ErrTaskNotFound.
func (s *TaskService) Get(_ context.Context, ownerID, id string) (*domain.Task, error) {
	return s.repo.FindByID(ownerID, id)
}

// ListResult is the outcome of a list operation: the requested page and
// the aggregate summary of the whole filtered set.
type ListResult struct {
	Page    []*domain.Task
	Summary Summary
}

// List fetches the owner's tasks and runs the query over them: filter,
// summarize the filtered set, then order and paginate.
func (s *TaskService) List(_ context.Context, req ListTasksRequest) (*ListResult, error) {
	all, err := s.repo.FindByOwner(req.OwnerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filtered := req.Query.Filter(all, now)
	summary := Summarize(filtered, now)
	req.Query.Sort(filtered)

	return &ListResult{
		Page:    req.Query.Page(filtered),
		Summary: summary,
	}, nil
}

// Update applies a full or partial update to an owned task. Per-field
// rules match Create for whichever fields are present; nothing is
// persisted when validation fails.
func (s *TaskService) Update(_ context.Context, req UpdateTaskRequest) (*domain.Task, error) {
	t, err := s.repo.FindByID(req.OwnerID, req.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()

	var errs ValidationErrors
	if req.Title != nil {
		if fe := validateTitle(*req.Title); fe != nil {
			errs = append(errs, *fe)
		}
	}
	status, fe := validateStatus(req.Status, t.Status)
	if fe != nil {
		errs = append(errs, *fe)
	}
	priority, fe := validatePriority(req.Priority, t.Priority)
	if fe != nil {
		errs = append(errs, *fe)
	}
	if req.DueDate != nil {
		if fe := validateDueDate(req.DueDate, now); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	t.Status = status
	t.Priority = priority
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	} else if req.ClearDueDate {
		t.DueDate = nil
	}

	if err := s.repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes an owned task unconditionally once the ownership check
// passes.
func (s *TaskService) Delete(_ context.Context, ownerID, id string) error {
	return s.repo.Delete(ownerID, id)
}

// Start moves a pending task to in_progress. Tasks in any other state are
// returned unchanged.
func (s *TaskService) Start(_ context.Context, ownerID, id string) (*domain.Task, error) {
	t, err := s.repo.FindByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if !t.Start() {
		return t, nil
	}
	if err := s.repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Complete marks an owned task completed from any state.
func (s *TaskService) Complete(_ context.Context, ownerID, id string) (*domain.Task, error) {
	t, err := s.repo.FindByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	t.Complete()
	if err := s.repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}
