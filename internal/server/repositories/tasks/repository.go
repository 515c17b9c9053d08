// Package tasks provides persistence for tasks. Every query is scoped by the
// owning user id; a task owned by someone else is indistinguishable from a
// missing one.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskvault/internal/server/models"
)

type Repository interface {
	// Create inserts a new task. A duplicate (user_id, title) pair yields
	// common.ErrorTitleNotUnique.
	Create(ctx context.Context, task *models.Task) (*models.Task, error)

	// ListByOwner returns the owner's tasks ordered by created_at descending,
	// optionally filtered to one status.
	ListByOwner(ctx context.Context, ownerID string, status *models.TaskStatus) ([]*models.Task, error)

	// GetByIDForOwner returns the task only if it exists and belongs to
	// ownerID; otherwise common.ErrorNotFound.
	GetByIDForOwner(ctx context.Context, id, ownerID string) (*models.Task, error)

	// Update writes title, description and status of the task identified by
	// (task.ID, task.UserID) and refreshes updated_at.
	Update(ctx context.Context, task *models.Task) (*models.Task, error)

	// Delete removes the task if it belongs to ownerID and reports whether a
	// row was actually deleted.
	Delete(ctx context.Context, id, ownerID string) (bool, error)

	// TitleExists reports whether the owner already has a task with the given
	// title. A non-empty excludeID leaves that task out of the check.
	TitleExists(ctx context.Context, ownerID, title, excludeID string) (bool, error)
}
