package tasks

import "time"

// CreateTaskRequest is the request for creating a task. OwnerID is always
// set by the API layer from the authenticated identity, never taken from
// client input.
type CreateTaskRequest struct {
	OwnerID     string     `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      *string    `json:"status,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// GetTaskRequest is the request for fetching a single task.
type GetTaskRequest struct {
	OwnerID string `json:"owner_id"`
	ID      string `json:"id"`
}

// ListTasksRequest is the request for listing an owner's tasks.
type ListTasksRequest struct {
	OwnerID string    `json:"owner_id"`
	Query   ListQuery `json:"query"`
}

// UpdateTaskRequest is the request for a full or partial task update.
// Absent pointer fields leave the stored value unchanged; ClearDueDate
// removes an existing due date. Owner and creation time are not part of
// the request shape and therefore cannot be changed.
type UpdateTaskRequest struct {
	OwnerID      string     `json:"owner_id"`
	ID           string     `json:"id"`
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Priority     *string    `json:"priority,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	ClearDueDate bool       `json:"clear_due_date,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	OwnerID string `json:"owner_id"`
	ID      string `json:"id"`
}

// TransitionTaskRequest is the request for the start/complete status
// transitions.
type TransitionTaskRequest struct {
	OwnerID string `json:"owner_id"`
	ID      string `json:"id"`
}

// TaskResponse is a task annotated with its computed fields. The computed
// values depend on the time of the request and are derived fresh on every
// read, never persisted.
type TaskResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	StatusDisplay   string     `json:"status_display"`
	Priority        string     `json:"priority"`
	PriorityDisplay string     `json:"priority_display"`
	DueDate         *time.Time `json:"due_date"`
	IsOverdue       bool       `json:"is_overdue"`
	DaysRemaining   *int       `json:"days_remaining"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ListTasksResponse is the response for a list request: the requested page
// of annotated tasks plus aggregate metadata over the whole filtered set.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Meta  Summary        `json:"meta"`
}

// MutationResponse is the confirmation envelope for update, delete and
// transition operations.
type MutationResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Data    *TaskResponse `json:"data,omitempty"`
}
