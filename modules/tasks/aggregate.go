package tasks

import (
	"time"

	domain "github.com/example/task-api/domain/task"
)

// StatusCounts buckets tasks by status.
type StatusCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// PriorityCounts buckets tasks by priority.
type PriorityCounts struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// Summary is the aggregate metadata computed over a filtered set. It
// accompanies the paginated record list in list responses and always
// describes the whole filtered set, not just the returned page.
type Summary struct {
	TotalCount       int            `json:"total_count"`
	StatusCounts     StatusCounts   `json:"status_counts"`
	PriorityCounts   PriorityCounts `json:"priority_counts"`
	OverdueCount     int            `json:"overdue_count"`
	TasksWithDueDate int            `json:"tasks_with_due_date"`
}

// Summarize computes all aggregate counts in a single pass. The status
// buckets always sum to TotalCount, as do the priority buckets.
func Summarize(ts []*domain.Task, now time.Time) Summary {
	s := Summary{TotalCount: len(ts)}

	for _, t := range ts {
		switch t.Status {
		case domain.StatusPending:
			s.StatusCounts.Pending++
		case domain.StatusInProgress:
			s.StatusCounts.InProgress++
		case domain.StatusCompleted:
			s.StatusCounts.Completed++
		}

		switch t.Priority {
		case domain.PriorityLow:
			s.PriorityCounts.Low++
		case domain.PriorityMedium:
			s.PriorityCounts.Medium++
		case domain.PriorityHigh:
			s.PriorityCounts.High++
		}

		if t.IsOverdue(now) {
			s.OverdueCount++
		}
		if t.DueDate != nil {
			s.TasksWithDueDate++
		}
	}

	return s
}
