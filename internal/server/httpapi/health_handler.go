package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/taskvault/internal/server/services"
)

// HealthChecker reports service health.
type HealthChecker interface {
	Check(ctx context.Context) *services.Health
}

type HealthHandler struct {
	service HealthChecker
}

func NewHealthHandler(service HealthChecker) *HealthHandler {
	return &HealthHandler{service: service}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Check(r.Context()))
}
