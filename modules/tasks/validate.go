package tasks

import (
	"fmt"
	"strings"
	"time"

	domain "github.com/example/task-api/domain/task"
)

// MinTitleLength is the minimum trimmed length of a task title.
const MinTitleLength = 5

// validationPrefix marks validation failures so callers can tell them
// apart from internal errors after crossing the service boundary.
const validationPrefix = "validation failed"

// FieldError reports a validation failure on a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects per-field validation failures for one request.
// A request that fails validation causes no state change.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return validationPrefix + ": " + strings.Join(parts, "; ")
}

// IsValidationError reports whether an error message originated from a
// ValidationErrors value, surviving serialization across the service
// container.
func IsValidationError(msg string) bool {
	return strings.Contains(msg, validationPrefix)
}

// ParseFieldErrors recovers the per-field detail from a serialized
// validation error message. Input that is not a validation message yields
// nothing.
func ParseFieldErrors(msg string) []FieldError {
	idx := strings.Index(msg, validationPrefix+": ")
	if idx < 0 {
		return nil
	}
	var out []FieldError
	for _, part := range strings.Split(msg[idx+len(validationPrefix)+2:], "; ") {
		field, message, ok := strings.Cut(part, ": ")
		if !ok {
			continue
		}
		out = append(out, FieldError{Field: field, Message: message})
	}
	return out
}

// validateTitle enforces the minimum trimmed title length.
func validateTitle(title string) *FieldError {
	if len(strings.TrimSpace(title)) < MinTitleLength {
		return &FieldError{
			Field:   "title",
			Message: fmt.Sprintf("must be at least %d characters", MinTitleLength),
		}
	}
	return nil
}

// validateDueDate requires a supplied due date to be strictly in the
// future at validation time.
func validateDueDate(due *time.Time, now time.Time) *FieldError {
	if due != nil && !due.After(now) {
		return &FieldError{Field: "due_date", Message: "must be a future date"}
	}
	return nil
}

// validateStatus parses an optionally supplied status, falling back to the
// given default when absent.
func validateStatus(raw *string, fallback domain.Status) (domain.Status, *FieldError) {
	if raw == nil {
		return fallback, nil
	}
	status, ok := domain.ParseStatus(*raw)
	if !ok {
		return "", &FieldError{
			Field:   "status",
			Message: fmt.Sprintf("must be one of: %s, %s, %s", domain.StatusPending, domain.StatusInProgress, domain.StatusCompleted),
		}
	}
	return status, nil
}

// validatePriority parses an optionally supplied priority, falling back to
// the given default when absent.
func validatePriority(raw *string, fallback domain.Priority) (domain.Priority, *FieldError) {
	if raw == nil {
		return fallback, nil
	}
	priority, ok := domain.ParsePriority(*raw)
	if !ok {
		return "", &FieldError{
			Field:   "priority",
			Message: fmt.Sprintf("must be one of: %s, %s, %s", domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh),
		}
	}
	return priority, nil
}
