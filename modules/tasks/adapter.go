package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TasksPort defines the interface other modules use to access task
// operations. Every method takes the owner explicitly; there is no
// ambient current-user state.
type TasksPort interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	Get(ctx context.Context, req GetTaskRequest) (TaskResponse, error)
	List(ctx context.Context, req ListTasksRequest) (ListTasksResponse, error)
	Update(ctx context.Context, req UpdateTaskRequest) (MutationResponse, error)
	Delete(ctx context.Context, req DeleteTaskRequest) (MutationResponse, error)
	Start(ctx context.Context, req TransitionTaskRequest) (MutationResponse, error)
	Complete(ctx context.Context, req TransitionTaskRequest) (MutationResponse, error)
}

// TasksAdapter implements TasksPort using the service container.
type TasksAdapter struct {
	container mono.ServiceContainer
}

// NewTasksAdapter creates a new TasksAdapter.
func NewTasksAdapter(container mono.ServiceContainer) *TasksAdapter {
	return &TasksAdapter{
		container: container,
	}
}

// call performs a request-reply round trip against a tasks service.
func call[Req, Resp any](ctx context.Context, a *TasksAdapter, service string, req *Req, resp *Resp) error {
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		resp,
	); err != nil {
		return fmt.Errorf("%s request failed: %w", service, err)
	}
	return nil
}

// Create creates a task.
func (a *TasksAdapter) Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error) {
	var resp TaskResponse
	err := call(ctx, a, "create", &req, &resp)
	return resp, err
}

// Get fetches a single task.
func (a *TasksAdapter) Get(ctx context.Context, req GetTaskRequest) (TaskResponse, error) {
	var resp TaskResponse
	err := call(ctx, a, "get", &req, &resp)
	return resp, err
}

// List lists tasks with filters, ordering and pagination.
func (a *TasksAdapter) List(ctx context.Context, req ListTasksRequest) (ListTasksResponse, error) {
	var resp ListTasksResponse
	err := call(ctx, a, "list", &req, &resp)
	return resp, err
}

// Update applies a full or partial update.
func (a *TasksAdapter) Update(ctx context.Context, req UpdateTaskRequest) (MutationResponse, error) {
	var resp MutationResponse
	err := call(ctx, a, "update", &req, &resp)
	return resp, err
}

// Delete removes a task.
func (a *TasksAdapter) Delete(ctx context.Context, req DeleteTaskRequest) (MutationResponse, error) {
	var resp MutationResponse
	err := call(ctx, a, "delete", &req, &resp)
	return resp, err
}

// Start transitions a pending task to in_progress.
func (a *TasksAdapter) Start(ctx context.Context, req TransitionTaskRequest) (MutationResponse, error) {
	var resp MutationResponse
	err := call(ctx, a, "start", &req, &resp)
	return resp, err
}

// Complete transitions a task to completed.
func (a *TasksAdapter) Complete(ctx context.Context, req TransitionTaskRequest) (MutationResponse, error) {
	var resp MutationResponse
	err := call(ctx, a, "complete", &req, &resp)
	return resp, err
}
