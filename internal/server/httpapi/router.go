package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/taskvault/internal/logging"
)

// RouterDeps collects everything the router needs: the services behind the
// handlers, the token secret, and the optional instrumentation hooks.
type RouterDeps struct {
	Logger logging.Logger

	Auth   AuthService
	Tasks  TaskService
	Health HealthChecker
	Users  UserResolver

	JWTSecret         []byte
	CORSAllowedOrigin string

	Metrics        func(http.Handler) http.Handler
	MetricsHandler http.Handler
}

// NewRouter wires the REST routes. /auth, /health and /metrics are public;
// everything under /tasks sits behind the bearer token middleware.
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(CORS(deps.CORSAllowedOrigin))
	if deps.Metrics != nil {
		r.Use(deps.Metrics)
	}

	authHandler := NewAuthHandler(deps.Auth, deps.Logger)
	taskHandler := NewTaskHandler(deps.Tasks, deps.Logger)
	healthHandler := NewHealthHandler(deps.Health)

	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Get("/health", healthHandler.Check)
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Route("/tasks", func(r chi.Router) {
		r.Use(BearerAuth(deps.JWTSecret, deps.Users))
		r.Post("/", taskHandler.Create)
		r.Get("/", taskHandler.List)
		r.Get("/{id}", taskHandler.Get)
		r.Put("/{id}", taskHandler.Update)
		r.Delete("/{id}", taskHandler.Delete)
	})

	return r
}
