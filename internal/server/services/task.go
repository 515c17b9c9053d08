package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/taskvault/internal/common"
	"github.com/dmitrijs2005/taskvault/internal/dbx"
	"github.com/dmitrijs2005/taskvault/internal/server/models"
	"github.com/dmitrijs2005/taskvault/internal/server/repositories/repomanager"
)

// TaskPatch holds the fields a task update may change. Nil means the field
// was not supplied and keeps its current value.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
}

// TaskService implements owner-scoped task CRUD. The per-owner title
// uniqueness invariant is enforced twice: a check inside the same
// transaction as the write, and the (user_id, title) unique index as the
// backstop for concurrent requests.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// Create inserts a task for ownerID. A title the owner already uses yields
// common.ErrorTitleNotUnique.
func (s *TaskService) Create(ctx context.Context, ownerID, title, description string, status models.TaskStatus) (*models.Task, error) {
	var created *models.Task

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)

		exists, err := repo.TitleExists(ctx, ownerID, title, "")
		if err != nil {
			return fmt.Errorf("error checking title: %w", err)
		}
		if exists {
			return common.ErrorTitleNotUnique
		}

		task := &models.Task{UserID: ownerID, Title: title, Description: description, Status: status}
		created, err = repo.Create(ctx, task)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ListByOwner returns the owner's tasks, newest first, optionally filtered
// to one status. An owner with no tasks gets an empty slice, not an error.
func (s *TaskService) ListByOwner(ctx context.Context, ownerID string, status *models.TaskStatus) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.ListByOwner(ctx, ownerID, status)
}

// GetByIDForOwner returns the task only if ownerID owns it. A task owned by
// another user is indistinguishable from a missing one.
func (s *TaskService) GetByIDForOwner(ctx context.Context, id, ownerID string) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.GetByIDForOwner(ctx, id, ownerID)
}

// Update applies the supplied patch fields to the task. A title change
// re-runs the per-owner uniqueness check, excluding the task's own id, in
// the same transaction as the write.
func (s *TaskService) Update(ctx context.Context, id, ownerID string, patch TaskPatch) (*models.Task, error) {
	var updated *models.Task

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)

		task, err := repo.GetByIDForOwner(ctx, id, ownerID)
		if err != nil {
			return err
		}

		if patch.Title != nil && *patch.Title != task.Title {
			exists, err := repo.TitleExists(ctx, ownerID, *patch.Title, id)
			if err != nil {
				return fmt.Errorf("error checking title: %w", err)
			}
			if exists {
				return common.ErrorTitleNotUnique
			}
			task.Title = *patch.Title
		}
		if patch.Description != nil {
			task.Description = *patch.Description
		}
		if patch.Status != nil {
			task.Status = *patch.Status
		}

		updated, err = repo.Update(ctx, task)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Remove deletes the task and reports whether a row was actually deleted.
// A task that is absent or owned by someone else yields false, not an error.
func (s *TaskService) Remove(ctx context.Context, id, ownerID string) (bool, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.Delete(ctx, id, ownerID)
}
