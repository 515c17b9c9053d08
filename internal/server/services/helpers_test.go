package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskvault/internal/dbx"
	"github.com/dmitrijs2005/taskvault/internal/server/config"
	"github.com/dmitrijs2005/taskvault/internal/server/models"
	tasksrepo "github.com/dmitrijs2005/taskvault/internal/server/repositories/tasks"
	usersrepo "github.com/dmitrijs2005/taskvault/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
	}
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getByEmailOut *models.User
	getByEmailErr error

	getByIDOut *models.User
	getByIDErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := f.createOut
	if out == nil {
		out = u
	}
	return out, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailErr != nil {
		return nil, f.getByEmailErr
	}
	return f.getByEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDOut, nil
}

type fakeTasksRepo struct {
	createOut *models.Task
	createErr error

	listOut []*models.Task
	listErr error
	// listStatus records the filter passed to ListByOwner.
	listStatus *models.TaskStatus

	getOut *models.Task
	getErr error

	updateOut *models.Task
	updateErr error
	// updated records the task passed to Update.
	updated *models.Task

	deleteOut bool
	deleteErr error

	titleExistsOut bool
	titleExistsErr error
	// titleExistsCalls records (title, excludeID) pairs.
	titleExistsCalls [][2]string
}

func (f *fakeTasksRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := f.createOut
	if out == nil {
		out = task
	}
	return out, nil
}

func (f *fakeTasksRepo) ListByOwner(ctx context.Context, ownerID string, status *models.TaskStatus) ([]*models.Task, error) {
	f.listStatus = status
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeTasksRepo) GetByIDForOwner(ctx context.Context, id, ownerID string) (*models.Task, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	f.updated = task
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return task, nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	return f.deleteOut, f.deleteErr
}

func (f *fakeTasksRepo) TitleExists(ctx context.Context, ownerID, title, excludeID string) (bool, error) {
	f.titleExistsCalls = append(f.titleExistsCalls, [2]string{title, excludeID})
	return f.titleExistsOut, f.titleExistsErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTasksRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error  { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository       { return m.t }
