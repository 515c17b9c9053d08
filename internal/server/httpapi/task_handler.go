package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskvault/internal/common"
	"github.com/dmitrijs2005/taskvault/internal/logging"
	"github.com/dmitrijs2005/taskvault/internal/server/models"
	"github.com/dmitrijs2005/taskvault/internal/server/services"
)

// TaskService is the part of the task service the task endpoints need.
type TaskService interface {
	Create(ctx context.Context, ownerID, title, description string, status models.TaskStatus) (*models.Task, error)
	ListByOwner(ctx context.Context, ownerID string, status *models.TaskStatus) ([]*models.Task, error)
	GetByIDForOwner(ctx context.Context, id, ownerID string) (*models.Task, error)
	Update(ctx context.Context, id, ownerID string, patch services.TaskPatch) (*models.Task, error)
	Remove(ctx context.Context, id, ownerID string) (bool, error)
}

type TaskHandler struct {
	service TaskService
	log     logging.Logger
}

func NewTaskHandler(service TaskService, log logging.Logger) *TaskHandler {
	return &TaskHandler{service: service, log: log}
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

var statusEnum = []string{
	string(models.StatusPending),
	string(models.StatusInProgress),
	string(models.StatusCompleted),
}

const statusEnumMsg = "Status must be pending, in-progress, or completed"

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token not provided")
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Unexpected error during task creation")
		return
	}

	msgs := validate([]rule{
		{value: req.Title, required: true, requiredMsg: "Title is required"},
		{value: req.Status, required: true, requiredMsg: "Status is required", enum: statusEnum, enumMsg: statusEnumMsg},
	})
	if len(msgs) > 0 {
		writeError(w, http.StatusBadRequest, msgs...)
		return
	}

	task, err := h.service.Create(r.Context(), identity.ID, req.Title, req.Description, models.TaskStatus(req.Status))
	if err != nil {
		if errors.Is(err, common.ErrorTitleNotUnique) {
			writeError(w, http.StatusBadRequest, "title must be unique")
			return
		}
		h.log.Error(r.Context(), "task creation failed", "error", err)
		writeError(w, http.StatusBadRequest, "Unexpected error during task creation")
		return
	}

	writeSuccess(w, http.StatusCreated, "Task created successfully", newTaskView(task))
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token not provided")
		return
	}

	var filter *models.TaskStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := models.TaskStatus(raw)
		if !status.Valid() {
			writeError(w, http.StatusBadRequest, statusEnumMsg)
			return
		}
		filter = &status
	}

	tasks, err := h.service.ListByOwner(r.Context(), identity.ID, filter)
	if err != nil {
		h.log.Error(r.Context(), "tasks retrieval failed", "error", err)
		writeError(w, http.StatusBadRequest, "Unexpected error during tasks retrieval")
		return
	}

	writeSuccess(w, http.StatusOK, "Tasks retrieved successfully", newTaskViews(tasks))
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token not provided")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	task, err := h.service.GetByIDForOwner(r.Context(), id, identity.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		h.log.Error(r.Context(), "task retrieval failed", "error", err)
		writeError(w, http.StatusBadRequest, "Unexpected error during task retrieval")
		return
	}

	writeSuccess(w, http.StatusOK, "Task retrieved successfully", newTaskView(task))
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token not provided")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Unexpected error during task update")
		return
	}

	var rules []rule
	if req.Title != nil {
		rules = append(rules, rule{value: *req.Title, required: true, requiredMsg: "Title is required"})
	}
	if req.Status != nil {
		rules = append(rules, rule{value: *req.Status, required: true, requiredMsg: "Status is required", enum: statusEnum, enumMsg: statusEnumMsg})
	}
	if msgs := validate(rules); len(msgs) > 0 {
		writeError(w, http.StatusBadRequest, msgs...)
		return
	}

	patch := services.TaskPatch{Title: req.Title, Description: req.Description}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		patch.Status = &status
	}

	task, err := h.service.Update(r.Context(), id, identity.ID, patch)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "Task not found")
		case errors.Is(err, common.ErrorTitleNotUnique):
			writeError(w, http.StatusBadRequest, "title must be unique")
		default:
			h.log.Error(r.Context(), "task update failed", "error", err)
			writeError(w, http.StatusBadRequest, "Unexpected error during task update")
		}
		return
	}

	writeSuccess(w, http.StatusOK, "Task updated successfully", newTaskView(task))
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token not provided")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	deleted, err := h.service.Remove(r.Context(), id, identity.ID)
	if err != nil {
		h.log.Error(r.Context(), "task deletion failed", "error", err)
		writeError(w, http.StatusBadRequest, "Unexpected error during task deletion")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
