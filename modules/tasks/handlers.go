package tasks

import (
	"context"

	"github.com/go-monolith/mono"
)

// handleCreate handles task creation.
func (m *TasksModule) handleCreate(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.service.Create(ctx, req)
	if err != nil {
		return TaskResponse{}, err
	}
	return NewTaskResponse(t, m.service.now()), nil
}

// handleGet handles fetching a single task.
func (m *TasksModule) handleGet(ctx context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.service.Get(ctx, req.OwnerID, req.ID)
	if err != nil {
		return TaskResponse{}, err
	}
	return NewTaskResponse(t, m.service.now()), nil
}

// handleList handles listing tasks with filters, ordering and pagination.
func (m *TasksModule) handleList(ctx context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	result, err := m.service.List(ctx, req)
	if err != nil {
		return ListTasksResponse{}, err
	}
	return ListTasksResponse{
		Tasks: NewTaskResponses(result.Page, m.service.now()),
		Meta:  result.Summary,
	}, nil
}

// handleUpdate handles full or partial task updates.
func (m *TasksModule) handleUpdate(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (MutationResponse, error) {
	t, err := m.service.Update(ctx, req)
	if err != nil {
		return MutationResponse{}, err
	}
	resp := NewTaskResponse(t, m.service.now())
	return MutationResponse{
		Status:  "success",
		Message: "Task updated successfully",
		Data:    &resp,
	}, nil
}

// handleDelete handles task deletion.
func (m *TasksModule) handleDelete(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (MutationResponse, error) {
	if err := m.service.Delete(ctx, req.OwnerID, req.ID); err != nil {
		return MutationResponse{}, err
	}
	return MutationResponse{
		Status:  "success",
		Message: "Task deleted successfully",
	}, nil
}

// handleStart handles the pending to in_progress transition.
func (m *TasksModule) handleStart(ctx context.Context, req TransitionTaskRequest, _ *mono.Msg) (MutationResponse, error) {
	t, err := m.service.Start(ctx, req.OwnerID, req.ID)
	if err != nil {
		return MutationResponse{}, err
	}
	resp := NewTaskResponse(t, m.service.now())
	return MutationResponse{
		Status:  "success",
		Message: "Task started",
		Data:    &resp,
	}, nil
}

// handleComplete handles the transition to completed.
func (m *TasksModule) handleComplete(ctx context.Context, req TransitionTaskRequest, _ *mono.Msg) (MutationResponse, error) {
	t, err := m.service.Complete(ctx, req.OwnerID, req.ID)
	if err != nil {
		return MutationResponse{}, err
	}
	resp := NewTaskResponse(t, m.service.now())
	return MutationResponse{
		Status:  "success",
		Message: "Task completed",
		Data:    &resp,
	}, nil
}
