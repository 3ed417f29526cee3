package tasks

import (
	"sort"
	"strconv"
	"strings"
	"time"

	domain "github.com/example/task-api/domain/task"
)

const (
	// DefaultPageSize is the page size applied when the caller does not
	// request one.
	DefaultPageSize = 20
	// MaxPageSize caps the page size a caller may request.
	MaxPageSize = 100

	// DefaultOrdering sorts newest tasks first.
	DefaultOrdering = "-created_at"

	dateLayout = "2006-01-02"
)

// ListQuery carries the raw filter, search, ordering and pagination
// parameters of a list request. Values arrive as strings straight from the
// query string; interpretation happens in Filter and Sort.
//
// Malformed optional inputs (bad date strings, bad booleans) drop the
// corresponding filter instead of failing the request. Unknown status or
// priority values, by contrast, match nothing and yield an empty set.
type ListQuery struct {
	Status     string `json:"status,omitempty"`
	Priority   string `json:"priority,omitempty"`
	HasDueDate string `json:"has_due_date,omitempty"`
	IsOverdue  string `json:"is_overdue,omitempty"`
	DueBefore  string `json:"due_date_before,omitempty"`
	DueAfter   string `json:"due_date_after,omitempty"`
	Search     string `json:"search,omitempty"`
	Ordering   string `json:"ordering,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// Filter applies every recognized filter with AND composition and returns
// the matching subset. It is a pure function of the input set, the query
// and the supplied time; absent parameters impose no constraint.
func (q ListQuery) Filter(in []*domain.Task, now time.Time) []*domain.Task {
	preds := make([]func(*domain.Task) bool, 0, 7)

	if q.Status != "" {
		status, ok := domain.ParseStatus(q.Status)
		if !ok {
			return nil
		}
		preds = append(preds, func(t *domain.Task) bool { return t.Status == status })
	}

	if q.Priority != "" {
		priority, ok := domain.ParsePriority(q.Priority)
		if !ok {
			return nil
		}
		preds = append(preds, func(t *domain.Task) bool { return t.Priority == priority })
	}

	if q.HasDueDate != "" {
		if want, err := strconv.ParseBool(q.HasDueDate); err == nil {
			preds = append(preds, func(t *domain.Task) bool { return (t.DueDate != nil) == want })
		}
	}

	if q.IsOverdue != "" {
		if want, err := strconv.ParseBool(q.IsOverdue); err == nil {
			preds = append(preds, func(t *domain.Task) bool { return t.IsOverdue(now) == want })
		}
	}

	if q.DueBefore != "" {
		if day, err := time.Parse(dateLayout, q.DueBefore); err == nil {
			// Inclusive of the named day: anything before the next midnight.
			bound := day.AddDate(0, 0, 1)
			preds = append(preds, func(t *domain.Task) bool {
				return t.DueDate != nil && t.DueDate.Before(bound)
			})
		}
	}

	if q.DueAfter != "" {
		if day, err := time.Parse(dateLayout, q.DueAfter); err == nil {
			preds = append(preds, func(t *domain.Task) bool {
				return t.DueDate != nil && !t.DueDate.Before(day)
			})
		}
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		preds = append(preds, func(t *domain.Task) bool {
			return strings.Contains(strings.ToLower(t.Title), needle) ||
				strings.Contains(strings.ToLower(t.Description), needle)
		})
	}

	out := make([]*domain.Task, 0, len(in))
	for _, t := range in {
		matched := true
		for _, pred := range preds {
			if !pred(t) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, t)
		}
	}
	return out
}

// Sort orders the tasks in place by the query's ordering parameter. A "-"
// prefix reverses direction. An empty or unrecognized field falls back to
// the default newest-first ordering.
func (q ListQuery) Sort(ts []*domain.Task) {
	ordering := q.Ordering
	if ordering == "" {
		ordering = DefaultOrdering
	}

	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")

	less := lessFunc(field)
	if less == nil {
		field = strings.TrimPrefix(DefaultOrdering, "-")
		less = lessFunc(field)
		desc = true
	}

	sort.SliceStable(ts, func(i, j int) bool {
		if desc {
			return less(ts[j], ts[i])
		}
		return less(ts[i], ts[j])
	})
}

// lessFunc returns the ascending comparator for a sortable field, or nil
// when the field is not sortable.
func lessFunc(field string) func(a, b *domain.Task) bool {
	switch field {
	case "created_at":
		return func(a, b *domain.Task) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "title":
		return func(a, b *domain.Task) bool { return a.Title < b.Title }
	case "status":
		return func(a, b *domain.Task) bool { return a.Status < b.Status }
	case "priority":
		return func(a, b *domain.Task) bool { return a.Priority < b.Priority }
	case "due_date":
		// Tasks without a due date sort after dated ones ascending.
		return func(a, b *domain.Task) bool {
			switch {
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			default:
				return a.DueDate.Before(*b.DueDate)
			}
		}
	}
	return nil
}

// Page slices out the requested page. Limit defaults to DefaultPageSize
// and is capped at MaxPageSize; an offset past the end yields an empty
// page. Successive pages partition the set with no gaps or duplicates.
func (q ListQuery) Page(ts []*domain.Task) []*domain.Task {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(ts) {
		return []*domain.Task{}
	}

	end := offset + limit
	if end > len(ts) {
		end = len(ts)
	}
	return ts[offset:end]
}
