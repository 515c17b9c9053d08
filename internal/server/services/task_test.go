package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/taskvault/internal/common"
	"github.com/dmitrijs2005/taskvault/internal/server/models"
)

func TestTaskService_Create(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeTasksRepo{createOut: &models.Task{ID: "t-1", UserID: "u-1", Title: "Buy milk", Status: models.StatusPending}}
		s := NewTaskService(db, &fakeRepoManager{t: repo})

		task, err := s.Create(context.Background(), "u-1", "Buy milk", "", models.StatusPending)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.ID != "t-1" {
			t.Errorf("task id = %q, want %q", task.ID, "t-1")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("duplicate title", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeTasksRepo{titleExistsOut: true}
		s := NewTaskService(db, &fakeRepoManager{t: repo})

		_, err := s.Create(context.Background(), "u-1", "Buy milk", "", models.StatusPending)
		if !errors.Is(err, common.ErrorTitleNotUnique) {
			t.Fatalf("error = %v, want ErrorTitleNotUnique", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("duplicate title lost race", func(t *testing.T) {
		// TitleExists misses a concurrent insert, the unique index catches it.
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeTasksRepo{createErr: common.ErrorTitleNotUnique}
		s := NewTaskService(db, &fakeRepoManager{t: repo})

		_, err := s.Create(context.Background(), "u-1", "Buy milk", "", models.StatusPending)
		if !errors.Is(err, common.ErrorTitleNotUnique) {
			t.Fatalf("error = %v, want ErrorTitleNotUnique", err)
		}
	})
}

func TestTaskService_Update(t *testing.T) {

	t.Run("patch all fields", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeTasksRepo{
			getOut: &models.Task{ID: "t-1", UserID: "u-1", Title: "Old", Description: "old", Status: models.StatusPending},
		}
		s := NewTaskService(db, &fakeRepoManager{t: repo})

		title := "New"
		desc := "new"
		status := models.StatusCompleted
		task, err := s.Update(context.Background(), "t-1", "u-1", TaskPatch{Title: &title, Description: &desc, Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Title != "New" || task.Description != "new" || task.Status != models.StatusCompleted {
			t.Errorf("updated task = %+v, want all fields patched", task)
		}
		if len(repo.titleExistsCalls) != 1 {
			t.Fatalf("TitleExists calls = %d, want 1", len(repo.titleExistsCalls))
		}
		if got := repo.titleExistsCalls[0]; got != [2]string{"New", "t-1"} {
			t.Errorf("TitleExists(title, excludeID) = %v, want [New t-1]", got)
		}
	})

	t.Run("partial patch keeps other fields", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeTasksRepo{
			getOut: &models.Task{ID: "t-1", UserID: "u-1", Title: "Old", Description: "old", Status: models.StatusPending},
		}
		s := NewTaskService(db, &fakeRepoManager{t: repo})

		status := models.StatusInProgress
		task, err := s.Update(context.Background(), "t-1", "u-1", TaskPatch{Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Title != "Old" || task.Description != "old" {
			t.Errorf("untouched fields changed: %+v", task)
		}
		if task.Status != models.StatusInProgress {
			t.Errorf("status = %q, want %q", task.Status, models.StatusInProgress)
		}
		if len(repo.titleExistsCalls) != 0 {
			t.Errorf("TitleExists called %d times without a title change", len(repo.titleExistsCalls))
		}
	})

	t.Run("same title skips uniqueness check", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeTasksRepo{
			getOut: &models.Task{ID: "t-1", UserID: "u-1", Title: "Same", Status: models.StatusPending},
		}
		s := NewTaskService(db, &fakeRepoManager{t: repo})

		title := "Same"
		if _, err := s.Update(context.Background(), "t-1", "u-1", TaskPatch{Title: &title}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.titleExistsCalls) != 0 {
			t.Errorf("TitleExists called %d times for an unchanged title", len(repo.titleExistsCalls))
		}
	})

	t.Run("duplicate title", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeTasksRepo{
			getOut:         &models.Task{ID: "t-1", UserID: "u-1", Title: "Old", Status: models.StatusPending},
			titleExistsOut: true,
		}
		s := NewTaskService(db, &fakeRepoManager{t: repo})

		title := "Taken"
		_, err := s.Update(context.Background(), "t-1", "u-1", TaskPatch{Title: &title})
		if !errors.Is(err, common.ErrorTitleNotUnique) {
			t.Fatalf("error = %v, want ErrorTitleNotUnique", err)
		}
		if repo.updated != nil {
			t.Error("Update reached the repository despite the duplicate title")
		}
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeTasksRepo{getErr: common.ErrorNotFound}
		s := NewTaskService(db, &fakeRepoManager{t: repo})

		status := models.StatusCompleted
		_, err := s.Update(context.Background(), "t-1", "u-1", TaskPatch{Status: &status})
		if !errors.Is(err, common.ErrorNotFound) {
			t.Fatalf("error = %v, want ErrorNotFound", err)
		}
	})
}

func TestTaskService_ListByOwner(t *testing.T) {
	db, _ := newSQLMockDB(t)

	t.Run("passes status filter through", func(t *testing.T) {
		repo := &fakeTasksRepo{listOut: []*models.Task{{ID: "t-1"}}}
		s := NewTaskService(db, &fakeRepoManager{t: repo})

		status := models.StatusPending
		tasks, err := s.ListByOwner(context.Background(), "u-1", &status)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 1 {
			t.Errorf("len(tasks) = %d, want 1", len(tasks))
		}
		if repo.listStatus == nil || *repo.listStatus != models.StatusPending {
			t.Errorf("status filter = %v, want pending", repo.listStatus)
		}
	})

	t.Run("no filter", func(t *testing.T) {
		repo := &fakeTasksRepo{listOut: []*models.Task{}}
		s := NewTaskService(db, &fakeRepoManager{t: repo})

		tasks, err := s.ListByOwner(context.Background(), "u-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tasks == nil {
			t.Error("tasks = nil, want empty slice")
		}
		if repo.listStatus != nil {
			t.Errorf("status filter = %v, want nil", repo.listStatus)
		}
	})
}

func TestTaskService_Remove(t *testing.T) {
	db, _ := newSQLMockDB(t)

	t.Run("deleted", func(t *testing.T) {
		repo := &fakeTasksRepo{deleteOut: true}
		s := NewTaskService(db, &fakeRepoManager{t: repo})

		ok, err := s.Remove(context.Background(), "t-1", "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Error("ok = false, want true")
		}
	})

	t.Run("absent or foreign", func(t *testing.T) {
		repo := &fakeTasksRepo{deleteOut: false}
		s := NewTaskService(db, &fakeRepoManager{t: repo})

		ok, err := s.Remove(context.Background(), "t-1", "u-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("ok = true, want false")
		}
	})
}
