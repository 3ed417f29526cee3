package task

import (
	"time"
)

// Status is the lifecycle state of a task. Values outside the three
// constants never survive ParseStatus, so persisted statuses are always
// members of the set.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// ParseStatus returns the Status for a raw string, reporting whether the
// value is a member of the enumeration.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return Status(s), true
	}
	return "", false
}

// Display returns the human-readable label for the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every valid priority in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority returns the Priority for a raw string, reporting whether
// the value is a member of the enumeration.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), true
	}
	return "", false
}

// Display returns the human-readable label for the priority.
func (p Priority) Display() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return string(p)
}

// Task represents a task record owned by a single user.
//
// OwnerID and CreatedAt are set once at creation and never change.
// DueDate is optional; when set it was in the future at the moment it was
// accepted, though it may since have passed (overdue-ness is derived at
// read time, never stored).
type Task struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      Status     `gorm:"size:20;not null;default:pending" json:"status"`
	Priority    Priority   `gorm:"size:20;not null;default:medium" json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	OwnerID     string     `gorm:"index;size:36;not null" json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}

// IsOverdue reports whether the task's due date has passed while the task
// is not yet completed. Tasks without a due date are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	return t.DueDate.Before(now)
}

// DaysRemaining returns the whole days left until the due date, clamped
// at zero once the due date has passed. Tasks without a due date return
// nil, which is distinct from a due date landing today.
func (t *Task) DaysRemaining(now time.Time) *int {
	if t.DueDate == nil {
		return nil
	}
	days := int(t.DueDate.Sub(now) / (24 * time.Hour))
	if days < 0 {
		days = 0
	}
	return &days
}

// Start moves a pending task into progress. Any other state is left
// untouched; the return reports whether a transition happened.
func (t *Task) Start() bool {
	if t.Status != StatusPending {
		return false
	}
	t.Status = StatusInProgress
	return true
}

// Complete marks the task completed regardless of its current state.
func (t *Task) Complete() {
	t.Status = StatusCompleted
}
