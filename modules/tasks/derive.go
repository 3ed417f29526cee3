package tasks

import (
	"time"

	domain "github.com/example/task-api/domain/task"
)

// NewTaskResponse annotates a task with its computed fields as of the
// given time.
func NewTaskResponse(t *domain.Task, now time.Time) TaskResponse {
	return TaskResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Status:          string(t.Status),
		StatusDisplay:   t.Status.Display(),
		Priority:        string(t.Priority),
		PriorityDisplay: t.Priority.Display(),
		DueDate:         t.DueDate,
		IsOverdue:       t.IsOverdue(now),
		DaysRemaining:   t.DaysRemaining(now),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// NewTaskResponses annotates a page of tasks. The result is never nil so
// an empty page serializes as an empty list.
func NewTaskResponses(ts []*domain.Task, now time.Time) []TaskResponse {
	out := make([]TaskResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, NewTaskResponse(t, now))
	}
	return out
}
