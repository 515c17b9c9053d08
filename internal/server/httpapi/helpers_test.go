package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskvault/internal/logging"
	"github.com/dmitrijs2005/taskvault/internal/server/auth"
	"github.com/dmitrijs2005/taskvault/internal/server/models"
	"github.com/dmitrijs2005/taskvault/internal/server/services"
)

var testSecret = []byte("test-secret")

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testToken(t *testing.T, userID, email string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, email, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return token
}

type fakeAuthService struct {
	registerOut *services.AuthResult
	registerErr error

	loginOut *services.AuthResult
	loginErr error
}

func (f *fakeAuthService) Register(ctx context.Context, email, password, name string) (*services.AuthResult, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerOut, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginOut, nil
}

type fakeTaskService struct {
	createOut *models.Task
	createErr error
	// createOwner records the owner id passed to Create.
	createOwner string

	listOut    []*models.Task
	listErr    error
	listStatus *models.TaskStatus

	getOut *models.Task
	getErr error

	updateOut   *models.Task
	updateErr   error
	updatePatch services.TaskPatch

	removeOut bool
	removeErr error
}

func (f *fakeTaskService) Create(ctx context.Context, ownerID, title, description string, status models.TaskStatus) (*models.Task, error) {
	f.createOwner = ownerID
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeTaskService) ListByOwner(ctx context.Context, ownerID string, status *models.TaskStatus) ([]*models.Task, error) {
	f.listStatus = status
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeTaskService) GetByIDForOwner(ctx context.Context, id, ownerID string) (*models.Task, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeTaskService) Update(ctx context.Context, id, ownerID string, patch services.TaskPatch) (*models.Task, error) {
	f.updatePatch = patch
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeTaskService) Remove(ctx context.Context, id, ownerID string) (bool, error) {
	return f.removeOut, f.removeErr
}

type fakeUserResolver struct {
	user *models.User
	err  error
}

func (f *fakeUserResolver) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeHealthChecker struct{}

func (fakeHealthChecker) Check(ctx context.Context) *services.Health {
	return &services.Health{Status: "ok", UpdatedAt: time.Now().UTC()}
}

type routerFakes struct {
	auth  *fakeAuthService
	tasks *fakeTaskService
	users *fakeUserResolver
}

func newTestRouter(f routerFakes) http.Handler {
	if f.auth == nil {
		f.auth = &fakeAuthService{}
	}
	if f.tasks == nil {
		f.tasks = &fakeTaskService{}
	}
	if f.users == nil {
		f.users = &fakeUserResolver{user: &models.User{ID: "u-1", Email: "john@example.com", Name: "John"}}
	}
	return NewRouter(RouterDeps{
		Logger:            testLogger(),
		Auth:              f.auth,
		Tasks:             f.tasks,
		Health:            fakeHealthChecker{},
		Users:             f.users,
		JWTSecret:         testSecret,
		CORSAllowedOrigin: "*",
	})
}

func doRequest(t *testing.T, h http.Handler, method, target, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding error envelope: %v (body %q)", err, rec.Body.String())
	}
	return env
}

type successBody struct {
	Message []string        `json:"message"`
	Data    json.RawMessage `json:"data"`
	Token   string          `json:"token"`
}

func decodeSuccess(t *testing.T, rec *httptest.ResponseRecorder) successBody {
	t.Helper()
	var body successBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding success envelope: %v (body %q)", err, rec.Body.String())
	}
	return body
}
