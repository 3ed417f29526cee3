package tasks

import (
	"errors"
	"fmt"

	domain "github.com/example/task-api/domain/task"
	"gorm.io/gorm"
)

// ErrTaskNotFound is returned when a task does not exist or belongs to a
// different owner. The two cases are deliberately indistinguishable so a
// caller can never probe for records it does not own.
var ErrTaskNotFound = errors.New("task not found")

// Repository handles task persistence using GORM. Every operation is
// scoped to an owner; no query path can cross ownership boundaries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new task.
func (r *Repository) Create(t *domain.Task) error {
	if err := r.db.Create(t).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by ID for the given owner.
func (r *Repository) FindByID(ownerID, id string) (*domain.Task, error) {
	var t domain.Task
	err := r.db.First(&t, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &t, nil
}

// FindByOwner retrieves every task belonging to the given owner.
func (r *Repository) FindByOwner(ownerID string) ([]*domain.Task, error) {
	var ts []*domain.Task
	if err := r.db.Find(&ts, "owner_id = ?", ownerID).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	return ts, nil
}

// Update persists the mutable fields of a task. The owner and creation
// timestamp columns are never part of the update set, so they cannot
// change through this path.
func (r *Repository) Update(t *domain.Task) error {
	result := r.db.Model(&domain.Task{}).
		Where("id = ? AND owner_id = ?", t.ID, t.OwnerID).
		Select("title", "description", "status", "priority", "due_date", "updated_at").
		Updates(t)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task by ID for the given owner.
func (r *Repository) Delete(ownerID, id string) error {
	result := r.db.Delete(&domain.Task{}, "id = ? AND owner_id = ?", id, ownerID)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
