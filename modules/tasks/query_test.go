package tasks

import (
	"testing"
	"time"

	domain "github.com/example/task-api/domain/task"
)

var now = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time {
	return &t
}

// fixture returns a known mixed set of tasks for filter tests.
func fixture() []*domain.Task {
	return []*domain.Task{
		{
			ID:        "t1",
			Title:     "Buy groceries",
			Status:    domain.StatusPending,
			Priority:  domain.PriorityHigh,
			CreatedAt: now.Add(-4 * time.Hour),
		},
		{
			ID:          "t2",
			Title:       "Write report",
			Description: "quarterly numbers",
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityMedium,
			DueDate:     timePtr(now.Add(-24 * time.Hour)), // overdue
			CreatedAt:   now.Add(-3 * time.Hour),
		},
		{
			ID:        "t3",
			Title:     "Ship release",
			Status:    domain.StatusCompleted,
			Priority:  domain.PriorityHigh,
			DueDate:   timePtr(now.Add(-48 * time.Hour)), // past due but completed
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        "t4",
			Title:     "Plan groceries budget",
			Status:    domain.StatusPending,
			Priority:  domain.PriorityLow,
			DueDate:   timePtr(now.Add(72 * time.Hour)),
			CreatedAt: now.Add(-1 * time.Hour),
		},
	}
}

func ids(ts []*domain.Task) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func assertIDs(t *testing.T, got []*domain.Task, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestListQuery_FilterStatus(t *testing.T) {
	q := ListQuery{Status: "pending"}
	assertIDs(t, q.Filter(fixture(), now), "t1", "t4")
}

func TestListQuery_FilterUnknownStatusMatchesNothing(t *testing.T) {
	// An unrecognized status yields an empty set, not an error
	q := ListQuery{Status: "archived"}
	if got := q.Filter(fixture(), now); len(got) != 0 {
		t.Errorf("unknown status matched %v, want empty", ids(got))
	}
}

func TestListQuery_FilterPriority(t *testing.T) {
	q := ListQuery{Priority: "high"}
	assertIDs(t, q.Filter(fixture(), now), "t1", "t3")

	q = ListQuery{Priority: "urgent"}
	if got := q.Filter(fixture(), now); len(got) != 0 {
		t.Errorf("unknown priority matched %v, want empty", ids(got))
	}
}

func TestListQuery_FilterHasDueDate(t *testing.T) {
	q := ListQuery{HasDueDate: "true"}
	assertIDs(t, q.Filter(fixture(), now), "t2", "t3", "t4")

	q = ListQuery{HasDueDate: "false"}
	assertIDs(t, q.Filter(fixture(), now), "t1")

	// Malformed boolean drops the filter
	q = ListQuery{HasDueDate: "maybe"}
	assertIDs(t, q.Filter(fixture(), now), "t1", "t2", "t3", "t4")
}

func TestListQuery_FilterIsOverdue(t *testing.T) {
	q := ListQuery{IsOverdue: "true"}
	assertIDs(t, q.Filter(fixture(), now), "t2")

	// false selects the exact complement: future due date, completed, or no
	// due date at all
	q = ListQuery{IsOverdue: "false"}
	assertIDs(t, q.Filter(fixture(), now), "t1", "t3", "t4")
}

func TestListQuery_FilterDueDateBounds(t *testing.T) {
	q := ListQuery{DueBefore: "2025-03-15"}
	assertIDs(t, q.Filter(fixture(), now), "t2", "t3")

	q = ListQuery{DueAfter: "2025-03-15"}
	assertIDs(t, q.Filter(fixture(), now), "t4")

	// The named day is inclusive on both bounds
	q = ListQuery{DueAfter: "2025-03-14"}
	assertIDs(t, q.Filter(fixture(), now), "t2", "t4")
}

func TestListQuery_MalformedDateIsDropped(t *testing.T) {
	// A malformed date string silently drops that filter: the result must
	// equal the unfiltered set
	malformed := ListQuery{DueBefore: "not-a-date"}
	plain := ListQuery{}

	got := malformed.Filter(fixture(), now)
	want := plain.Filter(fixture(), now)

	if len(got) != len(want) {
		t.Fatalf("malformed date filter changed the result: got %v, want %v", ids(got), ids(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Fatalf("malformed date filter changed the result: got %v, want %v", ids(got), ids(want))
		}
	}
}

func TestListQuery_Search(t *testing.T) {
	q := ListQuery{Search: "GROCERIES"}
	assertIDs(t, q.Filter(fixture(), now), "t1", "t4")

	// Search covers descriptions too
	q = ListQuery{Search: "quarterly"}
	assertIDs(t, q.Filter(fixture(), now), "t2")
}

func TestListQuery_FiltersCompose(t *testing.T) {
	q := ListQuery{Status: "pending", Search: "groceries", HasDueDate: "true"}
	assertIDs(t, q.Filter(fixture(), now), "t4")
}

func TestListQuery_Sort(t *testing.T) {
	tests := []struct {
		name     string
		ordering string
		want     []string
	}{
		{"default newest first", "", []string{"t4", "t3", "t2", "t1"}},
		{"created_at ascending", "created_at", []string{"t1", "t2", "t3", "t4"}},
		{"title ascending", "title", []string{"t1", "t4", "t3", "t2"}},
		{"title descending", "-title", []string{"t2", "t3", "t4", "t1"}},
		{"due_date ascending puts undated last", "due_date", []string{"t3", "t2", "t4", "t1"}},
		{"unknown field falls back to default", "flavour", []string{"t4", "t3", "t2", "t1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := fixture()
			q := ListQuery{Ordering: tt.ordering}
			q.Sort(ts)
			assertIDs(t, ts, tt.want...)
		})
	}
}

func TestListQuery_PagePartitionsExactly(t *testing.T) {
	ts := fixture()

	seen := map[string]int{}
	for offset := 0; offset < len(ts); offset += 2 {
		q := ListQuery{Limit: 2, Offset: offset}
		for _, task := range q.Page(ts) {
			seen[task.ID]++
		}
	}

	if len(seen) != len(ts) {
		t.Errorf("pages covered %d tasks, want %d", len(seen), len(ts))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("task %s appeared %d times across pages", id, n)
		}
	}
}

func TestListQuery_PageBounds(t *testing.T) {
	ts := fixture()

	q := ListQuery{Limit: 2, Offset: 10}
	if got := q.Page(ts); len(got) != 0 {
		t.Errorf("offset past end returned %v, want empty", ids(got))
	}

	q = ListQuery{} // defaults
	if got := q.Page(ts); len(got) != len(ts) {
		t.Errorf("default page returned %d tasks, want %d", len(got), len(ts))
	}

	q = ListQuery{Limit: MaxPageSize + 50}
	if got := q.Page(ts); len(got) != len(ts) {
		t.Errorf("oversized limit returned %d tasks, want %d", len(got), len(ts))
	}
}
