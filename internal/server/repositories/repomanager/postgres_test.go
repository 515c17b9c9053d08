package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
)

func TestPostgresRepositoryManager_Repositories(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	m, err := NewPostgresRepositoryManager(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Users(db) == nil {
		t.Error("Users() returned nil")
	}
	if m.Tasks(db) == nil {
		t.Error("Tasks() returned nil")
	}
}

func TestPostgresRepositoryManager_RunMigrations(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	t.Run("success", func(t *testing.T) {
		var gotDir string
		gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			gotDir = dir
			return nil
		}

		m := &PostgresRepositoryManager{}
		if err := m.RunMigrations(context.Background(), db); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotDir != "." {
			t.Errorf("dir = %q, want .", gotDir)
		}
	})

	t.Run("propagates error", func(t *testing.T) {
		wantErr := errors.New("migration failed")
		gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			return wantErr
		}

		m := &PostgresRepositoryManager{}
		if err := m.RunMigrations(context.Background(), db); !errors.Is(err, wantErr) {
			t.Fatalf("error = %v, want %v", err, wantErr)
		}
	})
}
