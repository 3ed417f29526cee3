package api

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/example/task-api/modules/tasks"
	"github.com/gofiber/fiber/v2"
)

// ListTasks handles listing the caller's tasks with filters, search,
// ordering and pagination.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	claims, ok := h.claims(c)
	if !ok {
		return unauthenticated(c)
	}

	req := tasks.ListTasksRequest{
		OwnerID: claims.UserID,
		Query:   parseListQuery(c),
	}

	resp, err := h.tasksAdapter.List(c.UserContext(), req)
	if err != nil {
		return h.handleTaskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetTask handles fetching a single task by ID.
func (h *Handlers) GetTask(c *fiber.Ctx) error {
	claims, ok := h.claims(c)
	if !ok {
		return unauthenticated(c)
	}

	resp, err := h.tasksAdapter.Get(c.UserContext(), tasks.GetTaskRequest{
		OwnerID: claims.UserID,
		ID:      c.Params("id"),
	})
	if err != nil {
		return h.handleTaskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// CreateTask handles task creation.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	claims, ok := h.claims(c)
	if !ok {
		return unauthenticated(c)
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	create := tasks.CreateTaskRequest{
		OwnerID:  claims.UserID,
		Status:   req.Status,
		Priority: req.Priority,
		DueDate:  req.DueDate,
	}
	if req.Title != nil {
		create.Title = *req.Title
	}
	if req.Description != nil {
		create.Description = *req.Description
	}

	resp, err := h.tasksAdapter.Create(c.UserContext(), create)
	if err != nil {
		return h.handleTaskError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateTask handles full and partial task updates.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	claims, ok := h.claims(c)
	if !ok {
		return unauthenticated(c)
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	resp, err := h.tasksAdapter.Update(c.UserContext(), tasks.UpdateTaskRequest{
		OwnerID:      claims.UserID,
		ID:           c.Params("id"),
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
	})
	if err != nil {
		return h.handleTaskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// DeleteTask handles task deletion.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	claims, ok := h.claims(c)
	if !ok {
		return unauthenticated(c)
	}

	resp, err := h.tasksAdapter.Delete(c.UserContext(), tasks.DeleteTaskRequest{
		OwnerID: claims.UserID,
		ID:      c.Params("id"),
	})
	if err != nil {
		return h.handleTaskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// StartTask moves a pending task to in_progress.
func (h *Handlers) StartTask(c *fiber.Ctx) error {
	return h.transitionTask(c, h.tasksAdapter.Start)
}

// CompleteTask marks a task completed from any state.
func (h *Handlers) CompleteTask(c *fiber.Ctx) error {
	return h.transitionTask(c, h.tasksAdapter.Complete)
}

// transitionTask runs one of the status transition operations.
func (h *Handlers) transitionTask(
	c *fiber.Ctx,
	op func(ctx context.Context, req tasks.TransitionTaskRequest) (tasks.MutationResponse, error),
) error {
	claims, ok := h.claims(c)
	if !ok {
		return unauthenticated(c)
	}

	resp, err := op(c.UserContext(), tasks.TransitionTaskRequest{
		OwnerID: claims.UserID,
		ID:      c.Params("id"),
	})
	if err != nil {
		return h.handleTaskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// parseListQuery maps recognized query parameters onto a ListQuery.
// Unrecognized parameters are ignored; malformed optional values are
// carried through raw and dropped by the filter engine.
func parseListQuery(c *fiber.Ctx) tasks.ListQuery {
	q := tasks.ListQuery{
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		HasDueDate: c.Query("has_due_date"),
		IsOverdue:  c.Query("is_overdue"),
		DueBefore:  c.Query("due_date_before"),
		DueAfter:   c.Query("due_date_after"),
		Search:     c.Query("search"),
		Ordering:   c.Query("ordering"),
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		q.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		q.Offset = v
	}
	return q
}

// unauthenticated rejects a request that carries no identity.
func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Error:   "unauthorized",
		Message: "User not authenticated",
	})
}

// handleTaskError maps task service failures onto HTTP responses. Errors
// cross the service container as strings, so dispatch matches known
// messages: not-found and not-owned collapse into one 404 outcome, and
// validation failures return per-field detail.
func (h *Handlers) handleTaskError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "task not found"):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	case tasks.IsValidationError(errStr):
		fields := map[string]string{}
		for _, fe := range tasks.ParseFieldErrors(errStr) {
			fields[fe.Field] = fe.Message
		}
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Task validation failed",
			Fields:  fields,
		})
	default:
		log.Printf("[api] Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
	}
}
