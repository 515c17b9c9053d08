package services

import (
	"context"
	"database/sql"
	"time"
)

// PostgresHealth describes the state of the database dependency.
type PostgresHealth struct {
	Status             string `json:"status"`
	Version            string `json:"version"`
	MaxConnections     int    `json:"max_connections"`
	CurrentConnections int    `json:"current_connections"`
}

// HealthDependencies lists the external dependencies of the service.
type HealthDependencies struct {
	Postgres PostgresHealth `json:"postgres"`
}

// Health is the document returned by the health endpoint.
type Health struct {
	Status       string             `json:"status"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Dependencies HealthDependencies `json:"dependencies"`
}

// HealthService reports service health including database diagnostics.
type HealthService struct {
	db *sql.DB
}

// NewHealthService constructs a HealthService.
func NewHealthService(db *sql.DB) *HealthService {
	return &HealthService{db: db}
}

// Check queries the database for version and connection statistics. A failed
// query marks the dependency "down" instead of returning an error, so the
// endpoint stays useful when the database is unavailable.
func (s *HealthService) Check(ctx context.Context) *Health {
	h := &Health{Status: "ok", UpdatedAt: time.Now().UTC()}
	h.Dependencies.Postgres = s.postgresHealth(ctx)
	return h
}

func (s *HealthService) postgresHealth(ctx context.Context) PostgresHealth {
	query :=
		`SELECT current_setting('server_version'),
		        current_setting('max_connections')::int,
		        (SELECT count(*) FROM pg_stat_activity WHERE datname = current_database())
		 `

	var version string
	var maxConns, currentConns int
	err := s.db.QueryRowContext(ctx, query).Scan(&version, &maxConns, &currentConns)
	if err != nil {
		return PostgresHealth{Status: "down", Version: "unknown"}
	}

	return PostgresHealth{
		Status:             "up",
		Version:            version,
		MaxConnections:     maxConns,
		CurrentConnections: currentConns,
	}
}
